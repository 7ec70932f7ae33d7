// Package catalog holds the immutable reference data the draft engine is
// built on: maps with their objective grids, factions, environments, teams
// and the middleground relation between regions. Everything here is loaded
// once and treated as read-only lookup tables.
package catalog

import "fmt"

type Faction string

const (
	FactionUS  Faction = "US"
	FactionGER Faction = "GER"
	FactionSOV Faction = "SOV"
	FactionCW  Faction = "CW"
)

type Environment string

const (
	EnvDay      Environment = "Day"
	EnvOvercast Environment = "Overcast"
	EnvNight    Environment = "Night"
	EnvDawn     Environment = "Dawn"
	EnvDusk     Environment = "Dusk"
)

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// LookupError signals an unknown reference id (map, environment, team,
// layout). Handlers surface it as a generic client error, never as a crash.
type LookupError struct {
	Kind string
	Key  string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Key)
}

// ObjectiveRow is the three candidate objectives of one grid row.
type ObjectiveRow [3]string

type MapDetails struct {
	ID           string          `json:"id"`
	ShortName    string          `json:"short_name"`
	Environments []Environment   `json:"environments"`
	Objectives   [5]ObjectiveRow `json:"objectives"`
	Orientation  Orientation     `json:"orientation"`
	Allies       Faction         `json:"allies"`
	Axis         Faction         `json:"axis"`
	Tacmap       string          `json:"tacmap"`
}

// GetObjectives resolves a layout to the three contested objective names
// (rows 2-4 of the grid).
func (m *MapDetails) GetObjectives(l Layout) [3]string {
	var out [3]string
	for i := 0; i < 3; i++ {
		out[i] = m.Objectives[i+1][l[i]]
	}
	return out
}

// AllowsEnvironment reports whether env is one of the map's options.
func (m *MapDetails) AllowsEnvironment(env Environment) bool {
	for _, e := range m.Environments {
		if e == env {
			return true
		}
	}
	return false
}

// GetMap looks up a map by id.
func GetMap(id string) (*MapDetails, error) {
	m, ok := Maps[id]
	if !ok {
		return nil, &LookupError{Kind: "map", Key: id}
	}
	return m, nil
}

// MapIDs returns the catalog's map ids in a stable order.
func MapIDs() []string {
	ids := make([]string, 0, len(Maps))
	for _, m := range mapOrder {
		ids = append(ids, m)
	}
	return ids
}
