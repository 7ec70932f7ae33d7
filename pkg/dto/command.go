package dto

import "fmt"

// CommandType is the closed set of draft actions a client can submit.
type CommandType string

const (
	CommandTakeAdvantage CommandType = "take_advantage"
	CommandGiveAdvantage CommandType = "give_advantage"
	CommandCreateOffer   CommandType = "create_offer"
	CommandAcceptOffer   CommandType = "accept_offer"
	CommandSkipOffer     CommandType = "skip_offer"
	CommandUndo          CommandType = "undo"
)

// DraftCommand is one action against a match's draft. Which fields matter
// depends on Type: create_offer reads Map/Environment/Layout, accept_offer
// reads OfferNo and FlipSides, the rest carry no payload.
type DraftCommand struct {
	Type        CommandType `json:"type"`
	OfferNo     int         `json:"offer_no,omitempty"`
	Map         string      `json:"map,omitempty"`
	Environment string      `json:"environment,omitempty"`
	Layout      string      `json:"layout,omitempty"`
	FlipSides   bool        `json:"flip_sides,omitempty"`
}

func (c *DraftCommand) Validate() error {
	switch c.Type {
	case CommandTakeAdvantage, CommandGiveAdvantage, CommandSkipOffer, CommandUndo:
		return nil
	case CommandCreateOffer:
		if c.Map == "" || c.Environment == "" || c.Layout == "" {
			return fmt.Errorf("create_offer requires map, environment and layout")
		}
		return nil
	case CommandAcceptOffer:
		if c.OfferNo < 1 {
			return fmt.Errorf("accept_offer requires a positive offer_no")
		}
		return nil
	default:
		return fmt.Errorf("unknown command type %q", c.Type)
	}
}
