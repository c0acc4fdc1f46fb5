package domain

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrEmptyBill         = errors.New("bill has no line items")
	ErrBillInvalid       = errors.New("bill failed validation")
)
