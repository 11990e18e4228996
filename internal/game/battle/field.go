package battle

import (
	"fmt"
	"slices"

	"github.com/tmwork1/jpoke/internal/model"
)

// Field is the state of one weather, terrain, global or side condition.
type Field struct {
	Name     string
	Active   bool
	Duration int // turns left; -1 until explicitly removed
	Layers   int
	Source   model.Handle
}

// Permanent is the duration of a field that never ticks out.
const Permanent = -1

// FieldManager owns a closed family of fields. An exclusive manager keeps
// at most one member active (weather, terrain); a stackable one lets
// members coexist (trick room and gravity, per-side hazards and screens).
// Active fields register their handlers against the current active of each
// owning player.
type FieldManager struct {
	b         *Battle
	family    string
	exclusive bool
	owners    []int
	names     []string
	fields    map[string]*Field
}

func newFieldManager(b *Battle, family string, exclusive bool, owners []int, names ...string) *FieldManager {
	m := &FieldManager{
		b:         b,
		family:    family,
		exclusive: exclusive,
		owners:    owners,
		names:     names,
		fields:    make(map[string]*Field, len(names)),
	}
	for _, n := range names {
		m.fields[n] = &Field{Name: n}
	}
	return m
}

func (b *Battle) initFields() {
	both := []int{0, 1}
	b.weather = newFieldManager(b, "weather", true, both, Sun, Rain, Sand, Snow)
	b.terrain = newFieldManager(b, "terrain", true, both, ElectricTerrain, GrassyTerrain, PsychicTerrain, MistyTerrain)
	b.global = newFieldManager(b, "global", false, both, TrickRoom, Gravity)
	for p := range b.sides {
		b.sides[p] = newFieldManager(b, fmt.Sprintf("side%d", p+1), false, []int{p},
			StealthRock, Spikes, ToxicSpikes, Reflect, LightScreen, Tailwind)
	}
}

func (m *FieldManager) member(name string) *Field {
	f, ok := m.fields[name]
	if !ok {
		panic(&model.InvariantError{Op: "field", Detail: fmt.Sprintf("%q is not a %s member", name, m.family)})
	}
	return f
}

// Get returns the state of a member.
func (m *FieldManager) Get(name string) Field {
	return *m.member(name)
}

// IsActive reports whether a member is active.
func (m *FieldManager) IsActive(name string) bool {
	f, ok := m.fields[name]
	return ok && f.Active
}

// Current returns the active member of an exclusive manager, or "".
func (m *FieldManager) Current() string {
	for _, n := range m.names {
		if m.fields[n].Active {
			return n
		}
	}
	return ""
}

// ActiveNames lists the active members in declaration order.
func (m *FieldManager) ActiveNames() []string {
	var out []string
	for _, n := range m.names {
		if m.fields[n].Active {
			out = append(out, n)
		}
	}
	return out
}

// Activate starts a member for duration turns. It fails when the member is
// already active; in an exclusive manager it replaces whatever else was
// active. A source lets EventDurationCheck handlers (held items) extend
// the duration.
func (m *FieldManager) Activate(name string, duration int, source *model.Combatant) bool {
	f := m.member(name)
	if f.Active {
		return false
	}
	if m.exclusive {
		if cur := m.Current(); cur != "" {
			m.Deactivate(cur)
		}
	}
	if source != nil && duration > 0 {
		duration = m.b.FireInt(EventDurationCheck,
			&Context{Source: source, Target: m.b.Foe(source), Effect: name}, duration)
	}
	*f = Field{Name: name, Active: true, Duration: duration, Layers: 1}
	if source != nil {
		f.Source = source.Handle
	}
	rec := mustLookup(KindField, name)
	for _, p := range m.owners {
		m.b.activate(rec, model.ActiveOf(p))
	}
	m.b.Log(m.subject(source), name, name+" started")
	return true
}

// Stack adds a layer to a stackable member (spikes), starting it when
// inactive. It fails once maxLayers is reached.
func (m *FieldManager) Stack(name string, maxLayers int, source *model.Combatant) bool {
	f := m.member(name)
	if !f.Active {
		return m.Activate(name, Permanent, source)
	}
	if f.Layers >= maxLayers {
		return false
	}
	f.Layers++
	m.b.Log(m.subject(source), name, fmt.Sprintf("%s rose to %d layers", name, f.Layers))
	return true
}

// Deactivate ends a member. It fails when the member is not active.
func (m *FieldManager) Deactivate(name string) bool {
	f := m.member(name)
	if !f.Active {
		return false
	}
	*f = Field{Name: name}
	rec := mustLookup(KindField, name)
	for _, p := range m.owners {
		m.b.deactivate(rec, model.ActiveOf(p))
	}
	m.b.Log(model.ActiveOf(m.owners[0]), name, name+" ended")
	return true
}

// Tick decrements a member's duration and ends it at zero. It returns true
// only when the member expired. Permanent members never expire.
func (m *FieldManager) Tick(name string) bool {
	f := m.member(name)
	if !f.Active || f.Duration == Permanent {
		return false
	}
	f.Duration--
	if f.Duration > 0 {
		return false
	}
	return m.Deactivate(name)
}

// TickAll ticks every active member and returns the names that expired.
func (m *FieldManager) TickAll() []string {
	var expired []string
	for _, n := range slices.Clone(m.names) {
		if m.Tick(n) {
			expired = append(expired, n)
		}
	}
	return expired
}

func (m *FieldManager) subject(source *model.Combatant) model.Handle {
	if source != nil {
		return source.Handle
	}
	return model.ActiveOf(m.owners[0])
}

func (m *FieldManager) clone(b *Battle) *FieldManager {
	cp := &FieldManager{
		b:         b,
		family:    m.family,
		exclusive: m.exclusive,
		owners:    m.owners,
		names:     m.names,
		fields:    make(map[string]*Field, len(m.fields)),
	}
	for n, f := range m.fields {
		ff := *f
		cp.fields[n] = &ff
	}
	return cp
}
