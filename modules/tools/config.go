package tools

// Config holds env-tagged settings for the tools HTTP module.
type Config struct {
	// RequireToken rejects session creation without an Authorization bearer
	// token. The token is captured, never validated.
	RequireToken bool `env:"TOOLS_REQUIRE_TOKEN" envDefault:"false"`

	// AllowedOrigins lists CORS origins; "*" allows any origin.
	AllowedOrigins []string `env:"TOOLS_CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// CORSMaxAge is the preflight cache duration in seconds.
	CORSMaxAge int `env:"TOOLS_CORS_MAX_AGE" envDefault:"300"`

	// SessionRateLimit caps session creations per client IP per minute.
	// Zero disables the limit.
	SessionRateLimit int `env:"TOOLS_SESSION_RATE_LIMIT" envDefault:"0"`

	// TrustProxyHeaders resolves the client IP from proxy headers such as
	// X-Forwarded-For. Enable only behind a proxy that overwrites them.
	TrustProxyHeaders bool `env:"TOOLS_TRUST_PROXY_HEADERS" envDefault:"false"`
}

// DefaultConfig returns the configuration used when none is loaded.
func DefaultConfig() Config {
	return Config{
		AllowedOrigins: []string{"*"},
		CORSMaxAge:     300,
	}
}
