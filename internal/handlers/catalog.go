package handlers

import (
	"strconv"

	"github.com/draftphase/draftphase-api/internal/catalog"
	"github.com/draftphase/draftphase-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

// CatalogHandler serves the static reference data: maps, layouts and
// teams. No auth; clients need it before login to render anything.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) ListMaps(c *drift.Context) {
	ids := catalog.MapIDs()
	response := make([]dto.MapResponse, 0, len(ids))
	for _, id := range ids {
		details, err := catalog.GetMap(id)
		if err != nil {
			continue
		}
		response = append(response, toMapResponse(details))
	}
	_ = c.JSON(200, response)
}

func (h *CatalogHandler) GetMap(c *drift.Context) {
	details, err := catalog.GetMap(c.Param("mapId"))
	if err != nil {
		c.NotFound("map not found")
		return
	}
	_ = c.JSON(200, toMapResponse(details))
}

// ListLayouts enumerates valid layouts, optionally filtered to a fixed
// midpoint via ?midpoint=N.
func (h *CatalogHandler) ListLayouts(c *drift.Context) {
	var midpoint *int
	if raw := c.QueryParam("midpoint"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 2 {
			c.BadRequest("midpoint must be 0, 1 or 2")
			return
		}
		midpoint = &n
	}

	layouts := catalog.LayoutCombinations(midpoint)
	response := dto.LayoutsResponse{Layouts: make([]string, len(layouts))}
	for i, l := range layouts {
		response.Layouts[i] = l.String()
	}
	_ = c.JSON(200, response)
}

func (h *CatalogHandler) ListTeams(c *drift.Context) {
	response := make([]dto.TeamResponse, 0, len(catalog.Teams))
	for _, team := range catalog.SortedTeams() {
		response = append(response, dto.TeamResponse{
			ID:     team.ID,
			Name:   team.Name,
			Region: string(team.Region),
			Emoji:  team.Emoji,
		})
	}
	_ = c.JSON(200, response)
}

func toMapResponse(m *catalog.MapDetails) dto.MapResponse {
	envs := make([]string, len(m.Environments))
	for i, e := range m.Environments {
		envs[i] = string(e)
	}

	orientation := "horizontal"
	if m.Orientation == catalog.Vertical {
		orientation = "vertical"
	}

	var objectives [5][3]string
	for i, row := range m.Objectives {
		objectives[i] = row
	}

	return dto.MapResponse{
		ID:           m.ID,
		ShortName:    m.ShortName,
		Environments: envs,
		Orientation:  orientation,
		Allies:       string(m.Allies),
		Axis:         string(m.Axis),
		Objectives:   objectives,
	}
}
