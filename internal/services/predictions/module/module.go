// Package module implements the predictions module
package module

import (
	"guidecheck/internal/modkit"
	modreg "guidecheck/internal/modkit/module"
	"guidecheck/internal/services/predictions/domain"
	"guidecheck/internal/services/predictions/repo"
	"guidecheck/internal/services/predictions/service"
)

// Ports exposed by the predictions module
type Ports struct {
	Writer domain.WriterPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new predictions module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	modkit.Build(append([]modkit.Option{
		modkit.WithName("predictions"),
	}, opts...)...)

	if deps.PG == nil {
		panic("predictions module: requires a Postgres TxRunner")
	}

	svc := service.New(deps.PG, repo.NewPG(), deps.CH)

	m := &Module{deps: deps}
	m.ports = Ports{Writer: svc}
	modreg.Register(m.Name(), m.ports)
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "predictions" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
