package catalog

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFootprint(t *testing.T) {
	cases := []struct {
		kind        BuildingKind
		long, short int
	}{
		{Filler, 6, 3},
		{Grinder, 6, 3},
		{Molder, 3, 3},
		{Refinery, 3, 3},
		{Crusher, 3, 3},
	}

	for _, c := range cases {
		long, short := Footprint(c.kind)
		if long != c.long || short != c.short {
			t.Errorf("Footprint(%v) = (%d,%d), want (%d,%d)", c.kind, long, short, c.long, c.short)
		}
		if Ports(c.kind) != c.long {
			t.Errorf("Ports(%v) = %d, want %d", c.kind, Ports(c.kind), c.long)
		}
		if !Valid(c.kind) {
			t.Errorf("Valid(%v) = false, want true", c.kind)
		}
	}
}

func TestParseBuildingKindRoundTrip(t *testing.T) {
	kinds := []BuildingKind{Filler, Grinder, Molder, Refinery, Crusher}
	for _, k := range kinds {
		parsed, err := ParseBuildingKind(k.String())
		if err != nil {
			t.Fatalf("ParseBuildingKind(%q): %v", k.String(), err)
		}
		if parsed != k {
			t.Errorf("round trip %v -> %q -> %v", k, k.String(), parsed)
		}
	}
}

func TestParseBuildingKindRejectsConveyor(t *testing.T) {
	if _, err := ParseBuildingKind("conveyor"); err == nil {
		t.Error("expected error parsing \"conveyor\" as a placeable BuildingKind")
	}
}

func TestParseBuildingKindRejectsUnknown(t *testing.T) {
	if _, err := ParseBuildingKind("smelter"); err == nil {
		t.Error("expected error parsing unknown kind")
	}
}

func TestBuildingKindJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Crusher)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"crusher"` {
		t.Errorf("Marshal(Crusher) = %s, want \"crusher\"", data)
	}
	var k BuildingKind
	if err := json.Unmarshal(data, &k); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if k != Crusher {
		t.Errorf("Unmarshal = %v, want Crusher", k)
	}
}

func TestBuildingKindYAMLRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(Molder)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	var k BuildingKind
	if err := yaml.Unmarshal(data, &k); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if k != Molder {
		t.Errorf("yaml round trip = %v, want Molder", k)
	}
}

func TestFootprintPanicsOnUnknownKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unregistered BuildingKind")
		}
	}()
	Footprint(BuildingKind(99))
}
