package domain

import "errors"

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrSessionRevoked  = errors.New("session revoked")
	ErrInvalidSession  = errors.New("invalid session")
	ErrIssuerMismatch  = errors.New("session issuer mismatch")
)

// Authorization errors
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInsufficientRole = errors.New("insufficient role")
)

// Resource errors
var (
	ErrIdentityNotFound = errors.New("identity not found")
	ErrApprovalNotFound = errors.New("content approval not found")
	ErrLeadNotFound     = errors.New("lead not found")
)

// Validation errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidRole  = errors.New("invalid role")
)
