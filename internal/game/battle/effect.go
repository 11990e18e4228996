package battle

import (
	"fmt"
	"maps"
	"slices"

	"github.com/tmwork1/jpoke/internal/model"
)

// EffectKind is the family an effect record belongs to.
type EffectKind uint8

const (
	KindAbility EffectKind = iota
	KindItem
	KindMove
	KindStatus
	KindVolatile
	KindField

	numKinds
)

var kindNames = [numKinds]string{"ability", "item", "move", "status", "volatile", "field"}

func (k EffectKind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "kind?"
}

// EffectRecord is the immutable description of one ability, item, move,
// status, volatile or field: its name, flags and the handlers it contributes.
type EffectRecord struct {
	Name     string
	Kind     EffectKind
	Flags    []string
	Handlers map[Event][]*Handler
}

// HasFlag reports whether the record carries flag f.
func (r *EffectRecord) HasFlag(f string) bool {
	return slices.Contains(r.Flags, f)
}

// events returns the record's event kinds in a fixed order so that
// registration order, and with it dispatch order, is reproducible.
func (r *EffectRecord) events() []Event {
	return slices.Sorted(maps.Keys(r.Handlers))
}

// catalog maps kind → name → record. Populated by init() in the effect_*.go
// files and read-only afterwards.
var catalog = [numKinds]map[string]*EffectRecord{}

// registerRecord adds a record to the catalog and stamps its handlers with
// their owning effect.
func registerRecord(r *EffectRecord) {
	if catalog[r.Kind] == nil {
		catalog[r.Kind] = make(map[string]*EffectRecord, 32)
	}
	if _, dup := catalog[r.Kind][r.Name]; dup {
		panic(fmt.Sprintf("duplicate %s record %q", r.Kind, r.Name))
	}
	for _, hs := range r.Handlers {
		for _, h := range hs {
			h.effect = r.Name
			h.kind = r.Kind
		}
	}
	catalog[r.Kind][r.Name] = r
}

// Lookup returns the effect record of the given kind and name.
func Lookup(kind EffectKind, name string) (*EffectRecord, error) {
	if kind >= numKinds {
		return nil, fmt.Errorf("%w: kind %d", ErrUnknownEffect, kind)
	}
	r, ok := catalog[kind][name]
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrUnknownEffect, kind, name)
	}
	return r, nil
}

// Names returns the registered names of one kind, sorted.
func Names(kind EffectKind) []string {
	return slices.Sorted(maps.Keys(catalog[kind]))
}

// mustLookup is for names the engine itself produced; a miss is a bug.
func mustLookup(kind EffectKind, name string) *EffectRecord {
	r, err := Lookup(kind, name)
	if err != nil {
		panic(err)
	}
	return r
}

// activate registers every handler of r against subject.
func (b *Battle) activate(r *EffectRecord, subject model.Handle) {
	for _, ev := range r.events() {
		for _, h := range r.Handlers[ev] {
			b.reg.Register(ev, h, subject)
		}
	}
}

// deactivate unregisters every handler of r from subject.
func (b *Battle) deactivate(r *EffectRecord, subject model.Handle) {
	for _, ev := range r.events() {
		for _, h := range r.Handlers[ev] {
			b.reg.Unregister(ev, h, subject)
		}
	}
}

// Register binds h to subject for ev on the battle's bus.
func (b *Battle) Register(ev Event, h *Handler, subject model.Handle) bool {
	return b.reg.Register(ev, h, subject)
}

// Unregister removes the (h, subject) binding for ev.
func (b *Battle) Unregister(ev Event, h *Handler, subject model.Handle) bool {
	return b.reg.Unregister(ev, h, subject)
}

// Registry exposes the battle's registry for inspection.
func (b *Battle) Registry() *Registry { return b.reg }

func init() {
	registerRecord(&EffectRecord{Name: model.StatusNone, Kind: KindStatus})
}
