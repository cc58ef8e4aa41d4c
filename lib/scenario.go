package lib

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Scenario is a board layout with its units and rule options, as read from a YAML file.
type Scenario struct {
	Name     string  `yaml:"name"`
	CellSize float64 `yaml:"cell_size"`
	// Single character legend used by Map.
	Terrain map[string]TerrainType `yaml:"terrain"`
	// One string per row, row index is y.
	Map     []string     `yaml:"map"`
	Units   []UnitConfig `yaml:"units"`
	Options Options      `yaml:"options"`
}

type UnitConfig struct {
	Name     string `yaml:"name"`
	Side     int    `yaml:"side"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Movement int    `yaml:"movement"`
	Range    int    `yaml:"range"`
	Attack   int    `yaml:"attack"`
	Defense  int    `yaml:"defense"`
	HP       int    `yaml:"hp"`
}

// UnmarshalYAML fills stats missing from the node with the unit defaults. Unknown
// keys are rejected as they are for the rest of the scenario.
func (s *UnitConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain UnitConfig
	unit := plain{
		Movement: DefaultMovement,
		Range:    DefaultRange,
		Attack:   DefaultAttack,
		Defense:  DefaultDefense,
		HP:       DefaultHP,
	}
	// node.Decode does not carry over KnownFields, so decode a copy strictly.
	data, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&unit); err != nil {
		return fmt.Errorf("Invalid unit at line %d (%w)", node.Line, err)
	}
	*s = UnitConfig(unit)
	return nil
}

func (s UnitConfig) Unit() Unit {
	return Unit{
		Name:     s.Name,
		Side:     s.Side,
		X:        s.X,
		Y:        s.Y,
		Movement: s.Movement,
		Range:    s.Range,
		Attack:   s.Attack,
		Defense:  s.Defense,
		HP:       s.HP,
	}
}

func LoadScenario(fsys fs.FS, name string) (*Scenario, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("Cannot read scenario file %s (%w)", name, err)
	}
	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("Cannot parse scenario file %s (%w)", name, err)
	}
	return scenario, nil
}

func ParseScenario(data []byte) (*Scenario, error) {
	scenario := &Scenario{
		CellSize: 1,
		Options:  DefaultOptions(),
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(scenario); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Empty scenario")
		}
		return nil, err
	}
	if err := scenario.validate(); err != nil {
		return nil, err
	}
	return scenario, nil
}

func (s *Scenario) Width() int {
	if len(s.Map) == 0 {
		return 0
	}
	return utf8.RuneCountInString(s.Map[0])
}
func (s *Scenario) Height() int {
	return len(s.Map)
}

func (s *Scenario) validate() error {
	if s.CellSize <= 0 {
		return fmt.Errorf("Invalid cell size %v", s.CellSize)
	}
	for symbol := range s.Terrain {
		if utf8.RuneCountInString(symbol) != 1 {
			return fmt.Errorf("Terrain legend key \"%s\" is not a single character", symbol)
		}
	}
	if s.Height() == 0 || s.Width() == 0 {
		return fmt.Errorf("Empty map")
	}
	for y, row := range s.Map {
		if utf8.RuneCountInString(row) != s.Width() {
			return fmt.Errorf("Map row %d has %d tiles, expected %d", y, utf8.RuneCountInString(row), s.Width())
		}
		for _, symbol := range row {
			if _, ok := s.Terrain[string(symbol)]; !ok {
				return fmt.Errorf("Unknown terrain '%c' in map row %d", symbol, y)
			}
		}
	}
	if s.Options.DamageFormula != "" {
		if _, err := CompileFormula(s.Options.DamageFormula); err != nil {
			return err
		}
	}
	return nil
}

// NewGrid builds the scenario's board without any units on it.
func (s *Scenario) NewGrid() (*Grid, error) {
	grid, err := NewGrid(s.Width(), s.Height(), s.CellSize)
	if err != nil {
		return nil, err
	}
	for y, row := range s.Map {
		x := 0
		for _, symbol := range row {
			grid.SetTerrain(GridCoords{x, y}, s.Terrain[string(symbol)])
			x++
		}
	}
	return grid, nil
}

func (s *Scenario) NewBattle(logger *slog.Logger) (*Battle, error) {
	grid, err := s.NewGrid()
	if err != nil {
		return nil, err
	}
	units := make([]Unit, 0, len(s.Units))
	for _, config := range s.Units {
		units = append(units, config.Unit())
	}
	battle, err := NewBattle(grid, units, s.Options, logger)
	if err != nil {
		return nil, fmt.Errorf("Cannot set up scenario %s (%w)", s.Name, err)
	}
	return battle, nil
}
