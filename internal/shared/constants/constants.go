package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyCustomerID    = "customer_id"
	ContextKeyWalletAddress = "wallet_address"
	ContextKeyRequestID     = "request_id"

	// Rate limits for unauthenticated endpoints, per client IP per minute
	LoginRateLimitPerMinute = 20
)
