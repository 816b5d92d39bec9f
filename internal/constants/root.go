package constants

import "time"

const (
	AppName = "consistency"
	Version = "v0.3.1"

	// KeyringService is the OS keyring service under which the bearer
	// token is stored. KeyringTokenUser mirrors the storage key the
	// mobile client used for the same value.
	KeyringService   = "consistency"
	KeyringTokenUser = "@auth_token"

	// UserInfoFileName holds the serialized user record in the data dir.
	UserInfoFileName = "user_info.json"

	// CacheFileName is the local habit cache database.
	CacheFileName = "cache.db"

	ConfigFileName = "config.yml"
	LogFileName    = "consistency.log"

	// DefaultBaseURL is the real backend's versioned API root.
	DefaultBaseURL = "https://api.consistency.app/api/v1"

	// QuoteAPIURL is the third-party inspirational quote endpoint. It is
	// never mocked; the interceptor denylists its host.
	QuoteAPIURL    = "https://api.quotable.io/random?tags=inspirational,motivational"
	QuoteDenylist  = "quotable.io"
	RequestTimeout = 15 * time.Second

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"
)
