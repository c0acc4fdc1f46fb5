package domain

// PlaceOfSupply classifies a bill as a same-state or cross-state transaction.
type PlaceOfSupply string

const (
	PlaceOfSupplyIntrastate PlaceOfSupply = "intrastate"
	PlaceOfSupplyInterstate PlaceOfSupply = "interstate"
)

// ValidationSeverity is the severity of a failed validation rule.
type ValidationSeverity string

const (
	ValidationSeverityError   ValidationSeverity = "error"
	ValidationSeverityWarning ValidationSeverity = "warning"
)

// ValidationStatus is the overall outcome of checking a bill.
type ValidationStatus string

const (
	ValidationStatusValid   ValidationStatus = "valid"
	ValidationStatusWarning ValidationStatus = "warning"
	ValidationStatusInvalid ValidationStatus = "invalid"
)

// ValidationRuleType categorizes built-in validation rules.
type ValidationRuleType string

const (
	ValidationRuleRangeCheck  ValidationRuleType = "range_check"
	ValidationRuleSumCheck    ValidationRuleType = "sum_check"
	ValidationRuleCrossField  ValidationRuleType = "cross_field"
	ValidationRuleFormatCheck ValidationRuleType = "format_check"
)

// ExportFormat represents the allowed output formats for bill exports.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// AllowedExportFormats maps file extensions (without dot) to ExportFormat.
var AllowedExportFormats = map[string]ExportFormat{
	"csv":  ExportFormatCSV,
	"xlsx": ExportFormatXLSX,
}
