package Ledger

import "errors"

// Error kinds surfaced to handlers. Handlers map these onto HTTP statuses:
// not-found -> 404, duplicate -> 409, invalid amount -> 422/400.
var (
	ErrNotFound           = errors.New("referenced record not found")
	ErrDuplicateReference = errors.New("duplicate reference")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrArithmetic         = errors.New("arithmetic failure")
)
