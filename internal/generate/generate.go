package generate

import (
	"fmt"

	"maze-crawler/internal/gamemap"
)

// Generate builds one complete dungeon: layout, door wiring, connectivity
// repair, and deferred content scheduling. The result is ready for
// gameplay; on ErrGenerationFailed the caller should retry with a new seed.
func Generate(cfg *Config) (*gamemap.Dungeon, error) {
	if cfg.Rand == nil {
		return nil, fmt.Errorf("generate: config needs a seeded Rand")
	}
	if cfg.Width < 15 || cfg.Height < 11 {
		return nil, fmt.Errorf("generate: grid %dx%d too small", cfg.Width, cfg.Height)
	}

	g := gamemap.NewGrid(cfg.Width, cfg.Height)

	var d *gamemap.Dungeon
	switch cfg.Strategy {
	case StrategyBranching:
		d = layoutBranching(g, cfg)
	default:
		d = layoutLinear(g, cfg)
	}

	if err := ensureConnected(g); err != nil {
		return nil, err
	}
	scheduleContent(d, cfg)
	return d, nil
}
