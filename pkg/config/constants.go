package config

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv    = "SWIFTMART_APP_ENV"
	EnvAppPort   = "SWIFTMART_APP_PORT"
	EnvDBDSN     = "SWIFTMART_DB_DSN"
	EnvDBDriver  = "SWIFTMART_DB_DRIVER"
	EnvJWTSecret = "SWIFTMART_JWT_SECRET"
)
