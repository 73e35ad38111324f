package injector

import (
	"github.com/google/uuid"
	"github.com/google/wire"

	"github.com/zeusync/gamemath/internal/config"
	"github.com/zeusync/gamemath/internal/observability/log"
	"github.com/zeusync/gamemath/pkg/vector"
)

var ProviderSet = wire.NewSet(ProvideLogger, ProvideRand, NewRuntime)

// Runtime is what a command needs besides the math packages.
type Runtime struct {
	Config *config.Config
	Log    log.Log
	Rand   *vector.Rand
	RunID  string
}

func ProvideLogger(cfg *config.Config) (*log.Logger, error) {
	opts, err := cfg.LogOptions()
	if err != nil {
		return nil, err
	}
	return log.New(opts)
}

// ProvideRand returns nil, the process-wide source, when no seed is set.
func ProvideRand(cfg *config.Config) *vector.Rand {
	if cfg.Random.Seed == "" {
		return nil
	}
	return vector.NewRandString(cfg.Random.Seed)
}

func NewRuntime(cfg *config.Config, logger *log.Logger, rnd *vector.Rand) *Runtime {
	runID := uuid.NewString()
	return &Runtime{
		Config: cfg,
		Log:    logger.With(log.String("run_id", runID)),
		Rand:   rnd,
		RunID:  runID,
	}
}
