package model

// Spec is the serialized build of one roster member, as stored in replays
// and team files.
type Spec struct {
	Species  string        `yaml:"name"`
	Gender   string        `yaml:"gender,omitempty"`
	Level    int           `yaml:"level"`
	Nature   string        `yaml:"nature"`
	Ability  string        `yaml:"ability"`
	Item     string        `yaml:"item,omitempty"`
	Moves    []string      `yaml:"moves,flow"`
	IVs      [NumStats]int `yaml:"ivs,flow"`
	EVs      [NumStats]int `yaml:"evs,flow"`
	TeraType string        `yaml:"tera_type,omitempty"`
}

// MaxIVs is the usual perfect individual-value spread.
var MaxIVs = [NumStats]int{31, 31, 31, 31, 31, 31}
