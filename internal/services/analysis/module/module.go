// Package module implements the analysis module
package module

import (
	"guidecheck/internal/modkit"
	"guidecheck/internal/modkit/module"
	"guidecheck/internal/platform/logger"
	"guidecheck/internal/services/analysis/domain"
	"guidecheck/internal/services/analysis/service"
	preddomain "guidecheck/internal/services/predictions/domain"
	predmodule "guidecheck/internal/services/predictions/module"
)

// Ports exposed by the analysis module
type Ports struct {
	Analyzer domain.AnalyzerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the analysis module. The predictions writer is resolved
// from the registry when available; without it the module runs dry
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	modkit.Build(append([]modkit.Option{
		modkit.WithName("analysis"),
	}, opts...)...)

	var writer preddomain.WriterPort
	if p, ok := module.PortsAs[predmodule.Ports]("predictions"); ok {
		writer = p.Writer
	}

	m := &Module{deps: deps}
	m.ports = Ports{Analyzer: service.New(writer, logger.Named("analysis"))}
	module.Register(m.Name(), m.ports)
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "analysis" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
