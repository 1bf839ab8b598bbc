package echo

import "go.uber.org/zap"

// Option configures [AddEchoes].
type Option func(*config)

type config struct {
	timestep     float64
	timestepSet  bool
	logger       *zap.Logger
	withOriginal bool
}

func defaultConfig() config {
	return config{
		logger: zap.NewNop(),
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithTimestep sets the output sample spacing. Without it the plus
// series' DeltaT is used. A non-positive value makes [AddEchoes] fail with
// [ErrInvalidParameter].
func WithTimestep(dt float64) Option {
	return func(c *config) {
		c.timestep = dt
		c.timestepSet = true
	}
}

// WithLogger routes diagnostics to l. The default logger discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOriginal also adds the untapered input waveform at offset zero, so the
// output holds the original event followed by its echoes.
func WithOriginal() Option {
	return func(c *config) {
		c.withOriginal = true
	}
}

func (c config) resolveTimestep(inputDeltaT float64) float64 {
	if c.timestepSet {
		return c.timestep
	}
	return inputDeltaT
}
