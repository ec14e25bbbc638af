// Package events implements ordered, synchronous fan-out of chassis
// changes to registered listeners.
package events

import (
	"github.com/VicenteCartas/megameklab/types"
)

// Listener receives one call per semantic chassis change.
type Listener interface {
	TonnageChanged(tonnage float64)
	OmniChanged(omni bool)
	TypeChanged(base types.BaseType, motive types.MotiveType, entity types.EntityType)
	StructureChanged(structure types.Structure)
	EngineChanged(engine types.Engine)
	GyroChanged(gyro types.GyroType)
	CockpitChanged(cockpit types.CockpitType)
	EnhancementChanged(enhancement types.Enhancement)
	FullHeadEjectChanged(eject bool)
	ResetChassis()
}

// Bus dispatches to listeners in registration order. Listeners are matched
// by identity, so register pointers. Every dispatched change is also
// recorded as a types.Event until drained.
type Bus struct {
	listeners []Listener
	recorded  []types.Event
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Add registers a listener. The same listener may be added twice and is
// then notified twice.
func (b *Bus) Add(l Listener) {
	b.listeners = append(b.listeners, l)
}

// Remove unregisters the first registration of l. It reports whether l
// was registered.
func (b *Bus) Remove(l Listener) bool {
	for i, cur := range b.listeners {
		if cur == l {
			b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registrations.
func (b *Bus) Len() int {
	return len(b.listeners)
}

// Drain returns the events recorded since the last drain.
func (b *Bus) Drain() []types.Event {
	out := b.recorded
	b.recorded = nil
	return out
}

// each calls fn on a snapshot of the listeners, so registrations made while
// dispatching take effect from the next event.
func (b *Bus) each(ev types.Event, fn func(Listener)) {
	b.recorded = append(b.recorded, ev)
	snapshot := append([]Listener(nil), b.listeners...)
	for _, l := range snapshot {
		fn(l)
	}
}

func (b *Bus) TonnageChanged(tonnage float64) {
	b.each(types.Event{Type: types.EventTonnageChanged, Data: map[string]any{"tonnage": tonnage}},
		func(l Listener) { l.TonnageChanged(tonnage) })
}

func (b *Bus) OmniChanged(omni bool) {
	b.each(types.Event{Type: types.EventOmniChanged, Data: map[string]any{"omni": omni}},
		func(l Listener) { l.OmniChanged(omni) })
}

func (b *Bus) TypeChanged(base types.BaseType, motive types.MotiveType, entity types.EntityType) {
	ev := types.Event{Type: types.EventTypeChanged, Data: map[string]any{
		"base": base, "motive": motive, "entity": entity,
	}}
	b.each(ev, func(l Listener) { l.TypeChanged(base, motive, entity) })
}

func (b *Bus) StructureChanged(structure types.Structure) {
	b.each(types.Event{Type: types.EventStructureChanged, Data: map[string]any{"structure": structure}},
		func(l Listener) { l.StructureChanged(structure) })
}

func (b *Bus) EngineChanged(engine types.Engine) {
	b.each(types.Event{Type: types.EventEngineChanged, Data: map[string]any{"engine": engine}},
		func(l Listener) { l.EngineChanged(engine) })
}

func (b *Bus) GyroChanged(gyro types.GyroType) {
	b.each(types.Event{Type: types.EventGyroChanged, Data: map[string]any{"gyro": gyro}},
		func(l Listener) { l.GyroChanged(gyro) })
}

func (b *Bus) CockpitChanged(cockpit types.CockpitType) {
	b.each(types.Event{Type: types.EventCockpitChanged, Data: map[string]any{"cockpit": cockpit}},
		func(l Listener) { l.CockpitChanged(cockpit) })
}

func (b *Bus) EnhancementChanged(enhancement types.Enhancement) {
	b.each(types.Event{Type: types.EventEnhancementChanged, Data: map[string]any{"enhancement": enhancement}},
		func(l Listener) { l.EnhancementChanged(enhancement) })
}

func (b *Bus) FullHeadEjectChanged(eject bool) {
	b.each(types.Event{Type: types.EventFullHeadEjectChanged, Data: map[string]any{"eject": eject}},
		func(l Listener) { l.FullHeadEjectChanged(eject) })
}

func (b *Bus) ResetChassis() {
	b.each(types.Event{Type: types.EventResetChassis},
		func(l Listener) { l.ResetChassis() })
}

// NopListener implements Listener with no-ops. Embed it to handle a subset
// of changes.
type NopListener struct{}

func (NopListener) TonnageChanged(float64)                                         {}
func (NopListener) OmniChanged(bool)                                               {}
func (NopListener) TypeChanged(types.BaseType, types.MotiveType, types.EntityType) {}
func (NopListener) StructureChanged(types.Structure)                               {}
func (NopListener) EngineChanged(types.Engine)                                     {}
func (NopListener) GyroChanged(types.GyroType)                                     {}
func (NopListener) CockpitChanged(types.CockpitType)                               {}
func (NopListener) EnhancementChanged(types.Enhancement)                           {}
func (NopListener) FullHeadEjectChanged(bool)                                      {}
func (NopListener) ResetChassis()                                                  {}
