package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Indicator is one criteria/thread pair of an award standard.
type Indicator struct {
	Criteria string `json:"criteria" yaml:"criteria"`
	Thread   string `json:"thread" yaml:"thread"`
}

// StandardDefinition is the reference indicator set of an award standard,
// keyed by NFQ level.
type StandardDefinition struct {
	ID     string              `json:"id" yaml:"id"`
	Name   string              `json:"name" yaml:"name"`
	Levels LevelMap `json:"levels" yaml:"levels"`
}

// LevelMap holds indicator lists keyed by NFQ level.
type LevelMap map[int][]Indicator

// UnmarshalYAML accepts level keys written either as integers or as quoted
// strings, matching the JSON form where keys are always strings.
func (m *LevelMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*m = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: levels must be a mapping", value.Line)
	}
	levels := make(LevelMap, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		level, err := strconv.Atoi(strings.TrimSpace(key.Value))
		if err != nil {
			return fmt.Errorf("line %d: level %q is not an integer", key.Line, key.Value)
		}
		var indicators []Indicator
		if err := val.Decode(&indicators); err != nil {
			return fmt.Errorf("level %d: %w", level, err)
		}
		levels[level] = indicators
	}
	*m = levels
	return nil
}

// StandardsMap holds pre-loaded standard definitions keyed by standard id.
type StandardsMap map[string]StandardDefinition

// LevelNumbers returns the NFQ levels the definition carries, ascending.
func (d StandardDefinition) LevelNumbers() []int {
	levels := make([]int, 0, len(d.Levels))
	for level := range d.Levels {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}

// IDs returns the map's standard ids in ascending order.
func (m StandardsMap) IDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
