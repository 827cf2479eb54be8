package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Aeastr/iconkit/internal/assets"
	"github.com/Aeastr/iconkit/internal/icon"
	"github.com/Aeastr/iconkit/internal/resolve"
)

// Model contains the Bubbletea state for the interactive resolver inspector:
// one loaded bundle, the currently selected render context, and the document
// resolved against it.
type Model struct {
	bundle     *assets.Bundle
	ctx        resolve.Context
	resolved   *resolve.ResolvedIcon
	resolveErr error

	viewport viewport.Model
	ready    bool
	width    int
	height   int
	quitting bool
}

// NewModel constructs an inspector for the given bundle, starting at the
// light/square context.
func NewModel(bundle *assets.Bundle) Model {
	m := Model{
		bundle: bundle,
		ctx:    resolve.Context{Appearance: icon.AppearanceLight, Idiom: icon.IdiomSquare},
	}
	m.reresolve()
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Context returns the currently selected render context.
func (m Model) Context() resolve.Context {
	return m.ctx
}

func (m *Model) reresolve() {
	m.resolved, m.resolveErr = resolve.Icon(m.bundle.Document, m.ctx)
	if m.ready {
		m.viewport.SetContent(m.renderResolved())
	}
}

func (m *Model) cycleAppearance() {
	switch m.ctx.Appearance {
	case icon.AppearanceLight:
		m.ctx.Appearance = icon.AppearanceDark
	case icon.AppearanceDark:
		m.ctx.Appearance = icon.AppearanceTinted
	default:
		m.ctx.Appearance = icon.AppearanceLight
	}
	m.reresolve()
}

func (m *Model) cycleIdiom() {
	if m.ctx.Idiom == icon.IdiomSquare {
		m.ctx.Idiom = icon.IdiomCircle
	} else {
		m.ctx.Idiom = icon.IdiomSquare
	}
	m.reresolve()
}
