package catalog

import (
	"sort"

	"github.com/google/uuid"
)

type Region string

const (
	RegionEU   Region = "EU"
	RegionNA   Region = "NA"
	RegionCIS  Region = "CIS"
	RegionAPAC Region = "APAC"
	RegionCN   Region = "CN"
)

type Team struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Region Region    `json:"region"`
	Emoji  string    `json:"emoji"`
}

// Teams is the static team registry. IDs are fixed so that persisted matches
// survive catalog reloads.
var Teams = map[uuid.UUID]*Team{
	mustID("6f1d2b34-0001-4c6e-9a10-3f6b5a1c9d01"): {ID: mustID("6f1d2b34-0001-4c6e-9a10-3f6b5a1c9d01"), Name: "Phantom Corps", Region: RegionEU, Emoji: "👻"},
	mustID("6f1d2b34-0002-4c6e-9a10-3f6b5a1c9d02"): {ID: mustID("6f1d2b34-0002-4c6e-9a10-3f6b5a1c9d02"), Name: "Iron Vanguard", Region: RegionEU, Emoji: "🛡️"},
	mustID("6f1d2b34-0003-4c6e-9a10-3f6b5a1c9d03"): {ID: mustID("6f1d2b34-0003-4c6e-9a10-3f6b5a1c9d03"), Name: "Red October", Region: RegionCIS, Emoji: "🚩"},
	mustID("6f1d2b34-0004-4c6e-9a10-3f6b5a1c9d04"): {ID: mustID("6f1d2b34-0004-4c6e-9a10-3f6b5a1c9d04"), Name: "Volga Wolves", Region: RegionCIS, Emoji: "🐺"},
	mustID("6f1d2b34-0005-4c6e-9a10-3f6b5a1c9d05"): {ID: mustID("6f1d2b34-0005-4c6e-9a10-3f6b5a1c9d05"), Name: "Liberty Division", Region: RegionNA, Emoji: "🦅"},
	mustID("6f1d2b34-0006-4c6e-9a10-3f6b5a1c9d06"): {ID: mustID("6f1d2b34-0006-4c6e-9a10-3f6b5a1c9d06"), Name: "Pacific Thunder", Region: RegionNA, Emoji: "⚡"},
	mustID("6f1d2b34-0007-4c6e-9a10-3f6b5a1c9d07"): {ID: mustID("6f1d2b34-0007-4c6e-9a10-3f6b5a1c9d07"), Name: "Southern Cross", Region: RegionAPAC, Emoji: "✴️"},
	mustID("6f1d2b34-0008-4c6e-9a10-3f6b5a1c9d08"): {ID: mustID("6f1d2b34-0008-4c6e-9a10-3f6b5a1c9d08"), Name: "Dragon Gate", Region: RegionCN, Emoji: "🐉"},
	mustID("6f1d2b34-0009-4c6e-9a10-3f6b5a1c9d09"): {ID: mustID("6f1d2b34-0009-4c6e-9a10-3f6b5a1c9d09"), Name: "Jade Battalion", Region: RegionCN, Emoji: "🀄"},
	mustID("6f1d2b34-000a-4c6e-9a10-3f6b5a1c9d0a"): {ID: mustID("6f1d2b34-000a-4c6e-9a10-3f6b5a1c9d0a"), Name: "Northern Watch", Region: RegionEU, Emoji: "❄️"},
}

// middlegrounds lists the region pairs with a shared middleground server
// location. Pairs without one negotiate offer/server advantage instead of
// first-offer rights.
var middlegrounds = map[[2]Region]bool{
	{RegionEU, RegionEU}:     true,
	{RegionNA, RegionNA}:     true,
	{RegionCIS, RegionCIS}:   true,
	{RegionAPAC, RegionAPAC}: true,
	{RegionCN, RegionCN}:     true,
	{RegionEU, RegionCIS}:    true,
	{RegionAPAC, RegionCN}:   true,
}

// GetTeam looks up a team by id.
func GetTeam(id uuid.UUID) (*Team, error) {
	t, ok := Teams[id]
	if !ok {
		return nil, &LookupError{Kind: "team", Key: id.String()}
	}
	return t, nil
}

// TeamOrUnknown is the lenient variant used for rendering: teams that have
// left the catalog still show up in historical matches.
func TeamOrUnknown(id uuid.UUID) *Team {
	if t, ok := Teams[id]; ok {
		return t
	}
	return &Team{ID: id, Name: "Unknown Team", Region: "Unknown", Emoji: "❓"}
}

// HasMiddleground reports whether the two teams' regions share a
// middleground. Unknown teams never do.
func HasMiddleground(team1ID, team2ID uuid.UUID) bool {
	t1, ok1 := Teams[team1ID]
	t2, ok2 := Teams[team2ID]
	if !ok1 || !ok2 {
		return false
	}
	return middlegrounds[[2]Region{t1.Region, t2.Region}] || middlegrounds[[2]Region{t2.Region, t1.Region}]
}

// SortedTeams returns the registry ordered by name for stable listings.
func SortedTeams() []*Team {
	teams := make([]*Team, 0, len(Teams))
	for _, t := range Teams {
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams
}

func mustID(s string) uuid.UUID {
	return uuid.MustParse(s)
}
