package catalog

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// BuildingKind identifies a production machine's role. It does not include
// conveyor, which is a tile-grid concept rather than a placeable machine.
type BuildingKind int

const (
	Filler BuildingKind = iota
	Grinder
	Molder
	Refinery
	Crusher
)

// String returns the lowercase identifier used in serialized graphs.
func (k BuildingKind) String() string {
	switch k {
	case Filler:
		return "filler"
	case Grinder:
		return "grinder"
	case Molder:
		return "molder"
	case Refinery:
		return "refinery"
	case Crusher:
		return "crusher"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// ParseBuildingKind resolves the lowercase wire identifier back to a
// BuildingKind. Returns an error for any string not in the catalog,
// including "conveyor" (conveyor is never a placeable machine kind).
func ParseBuildingKind(s string) (BuildingKind, error) {
	switch s {
	case "filler":
		return Filler, nil
	case "grinder":
		return Grinder, nil
	case "molder":
		return Molder, nil
	case "refinery":
		return Refinery, nil
	case "crusher":
		return Crusher, nil
	default:
		return 0, fmt.Errorf("catalog: unknown building kind %q", s)
	}
}

// MarshalJSON serializes k as its lowercase wire string.
func (k BuildingKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON parses k from its lowercase wire string.
func (k *BuildingKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseBuildingKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML serializes k as its lowercase wire string.
func (k BuildingKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalYAML parses k from its lowercase wire string.
func (k *BuildingKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseBuildingKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// footprint holds the long/short grid dimensions for a BuildingKind. Port
// count always equals Long (one port cell per long-axis cell).
type footprint struct {
	long, short int
}

var footprints = map[BuildingKind]footprint{
	Filler:   {long: 6, short: 3},
	Grinder:  {long: 6, short: 3},
	Molder:   {long: 3, short: 3},
	Refinery: {long: 3, short: 3},
	Crusher:  {long: 3, short: 3},
}

// Footprint returns (long, short) for kind, long oriented along grid X.
// Panics if kind is not a recognized BuildingKind: callers are expected to
// validate kinds (e.g. via ParseBuildingKind) before reaching this point.
func Footprint(kind BuildingKind) (long, short int) {
	fp, ok := footprints[kind]
	if !ok {
		panic(fmt.Sprintf("catalog: no footprint registered for kind %v", kind))
	}
	return fp.long, fp.short
}

// Ports returns the number of port cells along the long axis, equal to
// the long dimension of the footprint.
func Ports(kind BuildingKind) int {
	long, _ := Footprint(kind)
	return long
}

// Valid reports whether kind is a recognized, placeable BuildingKind.
func Valid(kind BuildingKind) bool {
	_, ok := footprints[kind]
	return ok
}
