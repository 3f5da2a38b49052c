// Package module implements the stats module
package module

import (
	"guidecheck/internal/modkit"
	modreg "guidecheck/internal/modkit/module"
	"guidecheck/internal/services/stats/domain"
	"guidecheck/internal/services/stats/repo"
	"guidecheck/internal/services/stats/service"
)

// Ports exposed by the stats module
type Ports struct {
	Stats domain.StatsPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the stats module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	modkit.Build(append([]modkit.Option{
		modkit.WithName("stats"),
	}, opts...)...)

	if deps.PG == nil {
		panic("stats module: requires a Postgres TxRunner")
	}

	m := &Module{deps: deps}
	m.ports = Ports{Stats: service.New(deps.PG, repo.NewPG())}
	modreg.Register(m.Name(), m.ports)
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "stats" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
