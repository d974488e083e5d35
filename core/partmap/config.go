package partmap

// Default limits applied by DefaultConfig.
const (
	DefaultMaxPartSize = 10 << 20 // 10 MB
	DefaultMaxParts    = 1000
)

// Config holds the draining limits. It can be loaded from the environment
// with core/config.
type Config struct {
	MaxPartSize int64 `env:"MULTIPART_MAX_PART_SIZE" envDefault:"10485760"`
	MaxParts    int   `env:"MULTIPART_MAX_PARTS" envDefault:"1000"`
}

// DefaultConfig returns the limits used when no option is given.
func DefaultConfig() Config {
	return Config{
		MaxPartSize: DefaultMaxPartSize,
		MaxParts:    DefaultMaxParts,
	}
}

// Options converts the config into draining options.
func (c Config) Options() []Option {
	return []Option{
		WithMaxPartSize(c.MaxPartSize),
		WithMaxParts(c.MaxParts),
	}
}

// Option configures New.
type Option func(*options)

type options struct {
	maxPartSize int64
	maxParts    int
}

// WithMaxPartSize limits the size of a single part payload. Zero disables the limit.
func WithMaxPartSize(n int64) Option {
	return func(o *options) {
		o.maxPartSize = n
	}
}

// WithMaxParts limits the number of parts in the body, named or not.
// Zero disables the limit.
func WithMaxParts(n int) Option {
	return func(o *options) {
		o.maxParts = n
	}
}

func newOptions(opts []Option) options {
	cfg := DefaultConfig()
	o := options{
		maxPartSize: cfg.MaxPartSize,
		maxParts:    cfg.MaxParts,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
