package checkout

// Config is a configuration for the checkout application
type Config struct {
	HTTPAddr string
	// BrandDetection enables automatic brand detection for sessions that
	// do not request it explicitly.
	BrandDetection bool
	// HashKey is the HMAC pepper used for stored card number hashes.
	HashKey string
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr: "localhost:9090",
		HashKey:  "dev-secret-pepper",
	}
}
