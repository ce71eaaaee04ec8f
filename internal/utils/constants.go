package utils

import "time"

// Application Constants
const (
	AppName    = "LocalServe"
	AppVersion = "1.0.0"

	// Default values
	DefaultCurrency    = "INR"
	DefaultCountryCode = "+91"
	DefaultTimeZone    = "Asia/Kolkata"

	// A bill amount in rupees maps to paise on the gateway side.
	MinorUnitFactor = 100

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Authentication
	JWTAccessTokenTTL  = 24 * time.Hour
	JWTRefreshTokenTTL = 7 * 24 * time.Hour

	// Billing
	MinBillAmount         = 1.0
	MaxBillAmount         = 500000.0
	DefaultCommissionRate = 0.05

	// Gateway
	GatewayCallTimeout = 15 * time.Second
)

// Response status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Common error messages
const (
	ErrValidationFailed = "Validation failed"
	ErrUnauthorized     = "Authentication required"
	ErrForbidden        = "Access denied"
	ErrInternalServer   = "Internal server error"
)

// Collection names
const (
	CollectionUsers       = "users"
	CollectionServices    = "services"
	CollectionRequests    = "service_requests"
	CollectionBills       = "bills"
	CollectionPayments    = "payments"
	CollectionTransfers   = "transfers"
	CollectionBankDetails = "provider_bank_details"
)
