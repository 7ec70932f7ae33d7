package handlers

import (
	"errors"

	"github.com/draftphase/draftphase-api/internal/catalog"
	"github.com/draftphase/draftphase-api/internal/models"
	"github.com/draftphase/draftphase-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
)

// respondDraftError maps the layered error taxonomy onto HTTP statuses.
// Draft legality rejections are shown verbatim so the client can surface
// them to the acting team. Catalog lookups get a generic message since the
// offending key came from the client. Integrity violations are server bugs.
func respondDraftError(c *drift.Context, err error) {
	var gse *models.GameStateError
	if errors.As(err, &gse) {
		_ = c.JSON(409, map[string]string{"error": gse.Reason})
		return
	}

	var lookupErr *catalog.LookupError
	if errors.As(err, &lookupErr) {
		_ = c.JSON(422, map[string]string{"error": "unknown " + lookupErr.Kind})
		return
	}

	if errors.Is(err, services.ErrMatchNotFound) {
		c.NotFound("match not found")
		return
	}

	c.InternalServerError("draft operation failed")
}
