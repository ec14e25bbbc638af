// Package engine is the application shell. It owns the unit record, the
// Structure and Armor tabs and the refresh channels, and Step turns one
// command line into edits.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/VicenteCartas/megameklab/engine/tech"
	"github.com/VicenteCartas/megameklab/engine/unit"
	"github.com/VicenteCartas/megameklab/logging"
	"github.com/VicenteCartas/megameklab/types"
)

// Exporter stores a unit under a name and returns where it went.
type Exporter interface {
	Export(ctx context.Context, name string, u *types.Unit) (string, error)
}

// Option configures a new Engine.
type Option func(*Engine)

// WithUnit starts the session on u instead of the blank unit. Non-Mech
// units are ignored.
func WithUnit(u *types.Unit) Option {
	return func(e *Engine) {
		if u != nil && u.Kind == types.UnitKindMech {
			e.Unit = u
		}
	}
}

// WithTemplates makes stock designs available to the "new" command.
func WithTemplates(templates map[string]*types.Unit) Option {
	return func(e *Engine) {
		e.Templates = templates
	}
}

// Engine holds the unit under edit and its views.
type Engine struct {
	Unit      *types.Unit
	Tech      tech.Manager
	Structure *StructureTab
	Armor     *ArmorTab
	Templates map[string]*types.Unit

	header    string
	status    string
	refreshed []types.Channel
	events    []types.Event
	hooks     []func() error
	closed    bool
}

// New creates an engine editing a fresh default unit.
func New(tm tech.Manager, opts ...Option) *Engine {
	e := &Engine{
		Tech: tm,
		Unit: unit.NewDefault(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.reloadTabs()
	return e
}

// reloadTabs tears down both tabs and builds them again around the current
// unit record.
func (e *Engine) reloadTabs() {
	if e.Unit.Armor == nil {
		unit.ResetArmor(e.Unit)
	}
	unit.FitArmor(e.Unit)
	e.Structure = newStructureTab(e.Unit, e.Tech, e)
	e.Armor = newArmorTab(e.Unit)
	e.Structure.sync()
	e.RefreshAll()
	e.refreshed = nil
}

// LoadUnit replaces the unit under edit and rebuilds every tab. It returns
// false and changes nothing when u is not a Mech.
func (e *Engine) LoadUnit(u *types.Unit) bool {
	if u == nil || u.Kind != types.UnitKindMech {
		return false
	}
	e.Unit = u
	e.reloadTabs()
	logging.Info("engine", "loaded %q", unit.Title(u))
	return true
}

// Save hands the unit to an exporter under its default file name.
func (e *Engine) Save(ctx context.Context, exp Exporter) (string, error) {
	where, err := exp.Export(ctx, unit.FileName(e.Unit), e.Unit)
	if err != nil {
		return "", fmt.Errorf("saving %s: %w", unit.FileName(e.Unit), err)
	}
	logging.Info("engine", "saved to %s", where)
	return where, nil
}

// OnClose registers a shutdown hook. Hooks run in reverse order.
func (e *Engine) OnClose(hook func() error) {
	e.hooks = append(e.hooks, hook)
}

// Close runs the shutdown hooks once. The host decides whether to exit.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	var errs []error
	for i := len(e.hooks) - 1; i >= 0; i-- {
		if err := e.hooks[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Closed reports whether Close has run.
func (e *Engine) Closed() bool { return e.closed }

// Header returns the title line.
func (e *Engine) Header() string { return e.header }

// Status returns the status bar line.
func (e *Engine) Status() string { return e.status }

// Refresh redraws the named channels.
func (e *Engine) Refresh(channels ...types.Channel) {
	for _, ch := range channels {
		switch ch {
		case types.ChannelHeader:
			e.RefreshHeader()
		case types.ChannelStatus:
			e.RefreshStatus()
		case types.ChannelStructure:
			e.RefreshStructure()
		case types.ChannelArmor:
			e.RefreshArmor()
		case types.ChannelWeapons:
			e.RefreshWeapons()
		case types.ChannelBuild:
			e.RefreshBuild()
		case types.ChannelAll:
			e.RefreshAll()
		}
	}
}

func (e *Engine) mark(ch types.Channel) {
	for _, cur := range e.refreshed {
		if cur == ch {
			return
		}
	}
	e.refreshed = append(e.refreshed, ch)
}

// RefreshHeader recomputes the title.
func (e *Engine) RefreshHeader() {
	e.header = unit.Title(e.Unit)
	e.mark(types.ChannelHeader)
}

// RefreshStatus recomputes the status bar.
func (e *Engine) RefreshStatus() {
	e.status = unit.Status(e.Unit)
	e.mark(types.ChannelStatus)
}

// RefreshStructure reloads the chassis panel from the unit.
func (e *Engine) RefreshStructure() {
	e.Structure.Refresh()
	e.mark(types.ChannelStructure)
}

// RefreshArmor rebuilds the armor rows.
func (e *Engine) RefreshArmor() {
	e.Armor.Refresh()
	e.mark(types.ChannelArmor)
}

// RefreshWeapons has no view to redraw; equipment is not edited here.
func (e *Engine) RefreshWeapons() {
	e.mark(types.ChannelWeapons)
}

// RefreshBuild has no view to redraw; critical slots are not edited here.
func (e *Engine) RefreshBuild() {
	e.mark(types.ChannelBuild)
}

// RefreshAll redraws every view.
func (e *Engine) RefreshAll() {
	e.RefreshStatus()
	e.RefreshStructure()
	e.RefreshArmor()
	e.RefreshHeader()
	e.mark(types.ChannelAll)
}
