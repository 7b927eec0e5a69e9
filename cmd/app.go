package main

import (
	"time"

	"github.com/siga-angola/envrisk-cli/internal/dashboard"
	"github.com/siga-angola/envrisk-cli/internal/georef"
	"github.com/siga-angola/envrisk-cli/internal/provider"
	"github.com/siga-angola/envrisk-cli/internal/risk"
)

// appEnv bundles the wired collaborators shared by the commands.
type appEnv struct {
	catalog *georef.Catalog
	builder *dashboard.Builder
}

// initApp wires catalog, provider, engine and builder. A non-zero seed
// pins the simulated provider; a non-zero month pins the seasonal clock
// so assessments are reproducible.
func initApp(seed int64, month time.Month) (*appEnv, error) {
	catalog, err := georef.NewCatalog()
	if err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = cfg.Provider.Seed
	}

	now := time.Now
	if month != 0 {
		fixed := time.Date(time.Now().Year(), month, 15, 12, 0, 0, 0, time.UTC)
		now = func() time.Time { return fixed }
	}

	var popts []provider.SimulatedOption
	if seed != 0 {
		popts = append(popts, provider.WithSeed(seed))
	}
	if month != 0 {
		popts = append(popts, provider.WithNow(now))
	}
	sim := provider.NewSimulated(popts...)

	engine := risk.NewEngine(risk.NewEventLog(), risk.WithClock(now))
	builder := dashboard.NewBuilder(sim, engine, dashboard.WithClock(now))

	return &appEnv{catalog: catalog, builder: builder}, nil
}
