package config

// EnvPrefix scopes every environment variable the service reads.
const EnvPrefix = "RYDE"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced from error messages and tests.
const (
	EnvAppEnv = "RYDE_APP_ENV"
	EnvPort   = "RYDE_APP_PORT"

	EnvDBDSN  = "RYDE_DB_DSN"
	EnvDBHost = "RYDE_DB_HOST"
	EnvDBUser = "RYDE_DB_USER"
	EnvDBName = "RYDE_DB_NAME"

	EnvStripeSecretKey      = "RYDE_STRIPE_SECRET_KEY"
	EnvStripePublishableKey = "RYDE_STRIPE_PUBLISHABLE_KEY"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
