package constants

const (
	DateLayout         = "060102"
	CoordinationOffset = 60
	ExcludedSerial     = "000"
)

const (
	DefaultJWTSecret = "supersecretkey"
	DefaultTokenTTL  = 24
)
