package app

import "go.uber.org/zap"

// Config holds runtime wiring options for building the app.
type Config struct {
	DataDir   string      // credential repository root; empty uses the platform default
	ConfigDir string      // key artifact directory; empty uses the platform default
	KeyBits   int         // RSA modulus size for key generation; 0 uses the default
	Logger    *zap.Logger // optional; defaults to a no-op logger
}
