package unit

import (
	"github.com/VicenteCartas/megameklab/engine/events"
	"github.com/VicenteCartas/megameklab/types"
)

// Refresher redraws the named regions of the shell.
type Refresher interface {
	Refresh(channels ...types.Channel)
}

// RatingSink receives engine rating changes the editor derives.
type RatingSink interface {
	SetEngineRating(rating int)
}

// Editor applies chassis changes to the unit record and asks the shell to
// redraw what they affect.
type Editor struct {
	unit    *types.Unit
	refresh Refresher
	rating  RatingSink
}

var _ events.Listener = (*Editor)(nil)

// NewEditor creates an editor for u. rating may be nil.
func NewEditor(u *types.Unit, r Refresher, rating RatingSink) *Editor {
	return &Editor{unit: u, refresh: r, rating: rating}
}

func (e *Editor) redraw(channels ...types.Channel) {
	if e.refresh != nil {
		e.refresh.Refresh(channels...)
	}
}

// TonnageChanged keeps the walking speed: the engine rating follows the
// new tonnage.
func (e *Editor) TonnageChanged(tonnage float64) {
	walk := WalkMP(e.unit)
	e.unit.Tonnage = tonnage
	e.unit.Engine.Rating = RatingFor(walk, tonnage)
	if e.rating != nil {
		e.rating.SetEngineRating(e.unit.Engine.Rating)
	}
	FitArmor(e.unit)
	e.redraw(types.ChannelHeader, types.ChannelStatus, types.ChannelArmor)
}

// OmniChanged redraws the structure tab too, since reset follows the flag.
func (e *Editor) OmniChanged(omni bool) {
	e.unit.Omni = omni
	e.redraw(types.ChannelStatus, types.ChannelStructure)
}

func (e *Editor) TypeChanged(base types.BaseType, motive types.MotiveType, _ types.EntityType) {
	e.unit.Base = base
	e.unit.Motive = motive
	if base == types.BaseLAM {
		e.unit.Omni = false
	}
	FitArmor(e.unit)
	e.redraw(types.ChannelAll)
}

func (e *Editor) StructureChanged(s types.Structure) {
	e.unit.Structure = s
	e.redraw(types.ChannelStatus, types.ChannelBuild)
}

func (e *Editor) EngineChanged(engine types.Engine) {
	e.unit.Engine = engine
	e.redraw(types.ChannelStatus, types.ChannelBuild)
}

func (e *Editor) GyroChanged(g types.GyroType) {
	e.unit.Gyro = g
	e.redraw(types.ChannelStatus, types.ChannelBuild)
}

func (e *Editor) CockpitChanged(c types.CockpitType) {
	e.unit.Cockpit = c
	e.redraw(types.ChannelStatus, types.ChannelBuild)
}

func (e *Editor) EnhancementChanged(enh types.Enhancement) {
	e.unit.Enhancement = enh
	e.redraw(types.ChannelStatus, types.ChannelBuild)
}

func (e *Editor) FullHeadEjectChanged(eject bool) {
	e.unit.FullHeadEject = eject
	e.redraw(types.ChannelStatus)
}

// ResetChassis strips pod-mounted configuration from an omni unit. Only
// fixed chassis equipment is modeled, so this only redraws.
func (e *Editor) ResetChassis() {
	e.redraw(types.ChannelAll)
}
