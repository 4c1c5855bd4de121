package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that a credential check did not approve the operation.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUnknownCurrency indicates that a currency code is not registered in the reference table.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrUnknownAccount indicates that an account identifier is not one of the session accounts.
var ErrUnknownAccount = errors.New("unknown account")

// ErrInsufficientFunds indicates that a debit would take a balance below zero.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrStaleQuote indicates that a quote is too old to be applied and must be re-quoted.
var ErrStaleQuote = errors.New("stale quote")

// ErrInvalidState indicates that an exchange step was requested out of order.
var ErrInvalidState = errors.New("invalid exchange state")
