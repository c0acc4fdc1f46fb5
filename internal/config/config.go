package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all gstcalc CLI configuration. The calculation engine itself
// takes everything as explicit arguments; this only supplies caller-side
// defaults.
type Config struct {
	Org    OrgConfig
	Bill   BillConfig
	Export ExportConfig
}

// OrgConfig holds the organization's own jurisdiction.
type OrgConfig struct {
	Jurisdiction string `mapstructure:"jurisdiction"`
}

// BillConfig holds per-bill calculation defaults.
type BillConfig struct {
	Inclusive bool `mapstructure:"inclusive"`
}

// ExportConfig holds bill export settings.
type ExportConfig struct {
	Format string `mapstructure:"format"`
	Dir    string `mapstructure:"dir"`
}

// Load reads configuration from environment variables with the GSTBILL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GSTBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Org defaults
	v.SetDefault("org.jurisdiction", "")

	// Bill defaults
	v.SetDefault("bill.inclusive", false)

	// Export defaults
	v.SetDefault("export.format", "csv")
	v.SetDefault("export.dir", ".")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
