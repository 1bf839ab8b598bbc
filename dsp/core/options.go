package core

// ProcessorConfig defines the sampling grid shared by generators and
// processors: sample rate in Hz and the time of the first sample.
type ProcessorConfig struct {
	SampleRate float64
	Epoch      float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the LIGO/Virgo analysis default of 4096 Hz
// starting at t=0.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 4096,
		Epoch:      0,
	}
}

// WithSampleRate sets the sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 && IsFinite(sampleRate) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithEpoch sets the time of the first sample in seconds.
func WithEpoch(epoch float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if IsFinite(epoch) {
			cfg.Epoch = epoch
		}
	}
}

// DeltaT returns the sample spacing in seconds.
func (cfg ProcessorConfig) DeltaT() float64 {
	return 1 / cfg.SampleRate
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
