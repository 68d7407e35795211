package huffbmp

// DefaultMaxPayloadSize is the default cap on the payload length a container
// may declare.
const DefaultMaxPayloadSize = 1 << 30

// Config holds decompression settings.
type Config struct {
	MaxPayloadSize uint64 // Largest accepted original length (0 = unlimited)
}

// Option is a functional option for configuring decompression.
type Option func(*Config)

// WithMaxPayloadSize caps the original payload length a container may
// declare.  A value of 0 removes the cap.
func WithMaxPayloadSize(n uint64) Option {
	return func(c *Config) {
		c.MaxPayloadSize = n
	}
}

func makeConfig(opts []Option) Config {
	cfg := Config{MaxPayloadSize: DefaultMaxPayloadSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
