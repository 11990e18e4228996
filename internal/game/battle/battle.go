// Package battle is the rules engine of a two-player, turn-based creature
// battle: an event bus that lets data-described effects interact, the
// turn-phase controller that sequences them, and the damage and speed
// calculators built on top of the bus.
package battle

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/tmwork1/jpoke/internal/data"
	"github.com/tmwork1/jpoke/internal/model"
)

// Draw is the winner index reported when both sides run out simultaneously
// or a turn limit ends level.
const Draw = -1

// Roster limits.
const (
	MaxTeamSize       = 6
	DefaultSelectSize = 3
)

// PlayerOptions configures one side.
type PlayerOptions struct {
	Name    string
	Team    []model.Spec
	Decider Decider
}

// Options configures a battle.
type Options struct {
	Seed       uint64
	Players    [2]PlayerOptions
	SelectSize int    // combatants brought to battle; defaults to 3
	Chance     Chance // defaults to RNGChance
}

// Battle is the root aggregate. Players and combatants live in arenas owned
// by the battle; everything else refers to them by model.Handle.
type Battle struct {
	seed     uint64
	src      *rand.PCG
	rng      *rand.Rand
	chanceFn Chance

	players  [2]*model.Player
	deciders [2]Decider
	reg      *Registry

	weather *FieldManager
	terrain *FieldManager
	global  *FieldManager
	sides   [2]*FieldManager

	selectSize int
	turn       int
	phase      Phase
	started    bool
	decided    bool
	winner     int

	log        []LogEntry
	transcript [2]map[int][]string
}

// New builds a battle from two teams. Unknown species, moves, abilities,
// items or natures are data errors and fail construction.
func New(opts Options) (*Battle, error) {
	b := &Battle{
		seed:     opts.Seed,
		chanceFn: opts.Chance,
		reg:      NewRegistry(),
		winner:   Draw,
	}
	if b.chanceFn == nil {
		b.chanceFn = RNGChance{}
	}
	b.src = rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)
	b.rng = rand.New(b.src)

	minTeam := MaxTeamSize
	for i, po := range opts.Players {
		if po.Decider == nil {
			return nil, fmt.Errorf("player %d: no decider", i+1)
		}
		p, err := buildPlayer(i, po)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i+1, err)
		}
		b.players[i] = p
		b.deciders[i] = po.Decider
		b.transcript[i] = make(map[int][]string)
		minTeam = min(minTeam, len(p.Roster))
	}

	b.selectSize = opts.SelectSize
	if b.selectSize <= 0 {
		b.selectSize = DefaultSelectSize
	}
	b.selectSize = min(b.selectSize, minTeam)

	b.initFields()
	return b, nil
}

func buildPlayer(index int, po PlayerOptions) (*model.Player, error) {
	if len(po.Team) == 0 || len(po.Team) > MaxTeamSize {
		return nil, fmt.Errorf("team size %d out of range 1..%d", len(po.Team), MaxTeamSize)
	}
	p := model.NewPlayer(index, po.Name)
	for slot, spec := range po.Team {
		c, err := buildCombatant(model.Handle{Player: index, Slot: slot}, spec)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", slot, err)
		}
		p.Roster = append(p.Roster, c)
	}
	return p, nil
}

func buildCombatant(h model.Handle, spec model.Spec) (*model.Combatant, error) {
	sp, err := data.Species(spec.Species)
	if err != nil {
		return nil, err
	}
	stats, err := data.ComputeStats(spec)
	if err != nil {
		return nil, err
	}
	if spec.Ability != "" {
		if _, err := Lookup(KindAbility, spec.Ability); err != nil {
			return nil, err
		}
	}
	if spec.Item != "" {
		if _, err := Lookup(KindItem, spec.Item); err != nil {
			return nil, err
		}
	}
	if len(spec.Moves) == 0 || len(spec.Moves) > 4 {
		return nil, fmt.Errorf("%s knows %d moves", spec.Species, len(spec.Moves))
	}
	moves := make([]model.MoveSlot, 0, len(spec.Moves))
	for _, name := range spec.Moves {
		def, err := data.Move(name)
		if err != nil {
			return nil, err
		}
		moves = append(moves, model.MoveSlot{Name: name, PP: def.PP, MaxPP: def.PP})
	}
	types := append([]string(nil), sp.Types...)
	return model.NewCombatant(h, spec, types, stats, moves), nil
}

// Seed returns the seed the battle was created with.
func (b *Battle) Seed() uint64 { return b.seed }

// Turn returns the current turn number (0 before the first full turn).
func (b *Battle) Turn() int { return b.turn }

// Phase returns the phase the controller is in.
func (b *Battle) Phase() Phase { return b.phase }

// SelectSize returns how many combatants each side brings.
func (b *Battle) SelectSize() int { return b.selectSize }

// Player returns player p.
func (b *Battle) Player(p int) *model.Player { return b.players[p] }

// Rand exposes the battle generator to effects and deciders that must stay
// reproducible under the battle seed.
func (b *Battle) Rand() *rand.Rand { return b.rng }

// Combatant resolves a handle. ActiveSlot resolves to the current active,
// which may be nil.
func (b *Battle) Combatant(h model.Handle) *model.Combatant {
	if h.Player < 0 || h.Player > 1 {
		return nil
	}
	p := b.players[h.Player]
	if h.IsActiveRef() {
		return p.ActiveCombatant()
	}
	if h.Slot < 0 || h.Slot >= len(p.Roster) {
		return nil
	}
	return p.Roster[h.Slot]
}

// Active returns the active combatant of player p, or nil.
func (b *Battle) Active(p int) *model.Combatant {
	return b.players[p].ActiveCombatant()
}

// IsActive reports whether c is on the field.
func (b *Battle) IsActive(c *model.Combatant) bool {
	return c != nil && b.players[c.Handle.Player].Active == c.Handle.Slot
}

// Foe returns the current opponent of c: the other side's active.
func (b *Battle) Foe(c *model.Combatant) *model.Combatant {
	if c == nil {
		return nil
	}
	return b.Active(model.Opponent(c.Handle.Player))
}

// Weather returns the exclusive weather manager.
func (b *Battle) Weather() *FieldManager { return b.weather }

// Terrain returns the exclusive terrain manager.
func (b *Battle) Terrain() *FieldManager { return b.terrain }

// Global returns the manager of stackable battle-wide fields.
func (b *Battle) Global() *FieldManager { return b.global }

// Side returns the per-side field manager of player p.
func (b *Battle) Side(p int) *FieldManager { return b.sides[p] }

// Winner returns the winner (or Draw) and whether the battle is decided.
func (b *Battle) Winner() (int, bool) { return b.winner, b.decided }

// Decided reports whether a winner has been cached.
func (b *Battle) Decided() bool { return b.decided }

// Score returns the survival score of player p.
func (b *Battle) Score(p int) float64 { return b.players[p].Score() }

// checkWinner caches the winner once one side's score is exactly zero.
func (b *Battle) checkWinner() {
	if b.decided || !b.started {
		return
	}
	s0, s1 := b.Score(0), b.Score(1)
	switch {
	case s0 == 0 && s1 == 0:
		b.decide(Draw)
	case s0 == 0:
		b.decide(1)
	case s1 == 0:
		b.decide(0)
	}
}

// decideByScore ends the battle at a turn limit: the higher score wins.
func (b *Battle) decideByScore() {
	if b.decided {
		return
	}
	s0, s1 := b.Score(0), b.Score(1)
	switch {
	case s0 > s1:
		b.decide(0)
	case s1 > s0:
		b.decide(1)
	default:
		b.decide(Draw)
	}
}

func (b *Battle) decide(winner int) {
	b.decided = true
	b.winner = winner
	if winner == Draw {
		b.Log(model.ActiveOf(0), "", "the battle ended in a draw")
		return
	}
	b.Log(model.ActiveOf(winner), "", b.players[winner].Name+" won the battle")
}

// Transcript is the replay-relevant history of a battle: the seed, each
// side's team and selection, and the commands issued per turn.
type Transcript struct {
	Seed    uint64
	Players [2]TranscriptPlayer
}

// TranscriptPlayer is one side of a Transcript.
type TranscriptPlayer struct {
	Name     string
	Selected []int
	Team     []model.Spec
	Commands map[int][]string
}

// Transcript returns a copy of the battle's command history.
func (b *Battle) Transcript() Transcript {
	t := Transcript{Seed: b.seed}
	for i, p := range b.players {
		tp := TranscriptPlayer{
			Name:     p.Name,
			Selected: append([]int(nil), p.Selected...),
			Commands: make(map[int][]string, len(b.transcript[i])),
		}
		for _, c := range p.Roster {
			tp.Team = append(tp.Team, c.Spec)
		}
		for turn, cmds := range b.transcript[i] {
			tp.Commands[turn] = append([]string(nil), cmds...)
		}
		t.Players[i] = tp
	}
	return t
}

func (b *Battle) record(p int, cmd model.Command) {
	b.transcript[p][b.turn] = append(b.transcript[p][b.turn], cmd.String())
}

// IsIllegalCommand reports whether err came from a decider choosing an
// option that was not offered.
func IsIllegalCommand(err error) bool {
	return errors.Is(err, ErrIllegalCommand)
}
