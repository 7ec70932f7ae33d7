package models

import (
	"time"

	"github.com/draftphase/draftphase-api/internal/catalog"
	"github.com/google/uuid"
)

// Offer is one proposed (map, environment, layout) triple. Accepted is a
// tri-state: nil while the offer is pending, then true or false forever
// (except through undo).
type Offer struct {
	ID          uuid.UUID           `json:"id"`
	MatchID     uuid.UUID           `json:"match_id"`
	OfferNo     int                 `json:"offer_no"`
	TeamID      uuid.UUID           `json:"team_id"`
	Map         string              `json:"map"`
	Environment catalog.Environment `json:"environment"`
	Layout      catalog.Layout      `json:"layout"`
	Accepted    *bool               `json:"accepted"`
	CreatedAt   time.Time           `json:"created_at"`
}

func (o *Offer) IsPending() bool {
	return o.Accepted == nil
}

func (o *Offer) MapDetails() (*catalog.MapDetails, error) {
	return catalog.GetMap(o.Map)
}
