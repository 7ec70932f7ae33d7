package models

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/draftphase/draftphase-api/internal/catalog"
	"github.com/google/uuid"
)

// TeamIdx identifies one of the two sides of a match.
type TeamIdx int

const (
	Team1 TeamIdx = 1
	Team2 TeamIdx = 2
)

func (i TeamIdx) Other() TeamIdx {
	if i == Team1 {
		return Team2
	}
	return Team1
}

var scoreRe = regexp.MustCompile(`(\d+)\s*[-:|/\\]\s*(\d+)`)

// Match is the draft between two teams. It owns its offers and the
// coin-flip/advantage/turn-order state; every legality rule and transition
// of the draft lives on this type and touches nothing but the struct, so
// the whole state machine is testable without storage.
//
// AdvantageChoice is nil while the coin-flip winner has not picked yet;
// afterwards true means team 2 took the advantage. SidesFlipped is set
// exactly when an offer has been accepted.
type Match struct {
	ID              uuid.UUID  `json:"id"`
	ChannelID       string     `json:"channel_id"`
	MessageID       *string    `json:"message_id,omitempty"`
	Team1ID         uuid.UUID  `json:"team1_id"`
	Team2ID         uuid.UUID  `json:"team2_id"`
	Subtitle        *string    `json:"subtitle,omitempty"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	Score           *string    `json:"score,omitempty"`
	MaxNumOffers    int        `json:"max_num_offers"`
	CoinFlip        bool       `json:"coin_flip"`
	AdvantageChoice *bool      `json:"advantage_choice"`
	SidesFlipped    *bool      `json:"sides_flipped"`
	StreamDelay     int        `json:"stream_delay"`
	Offers          []Offer    `json:"offers"`
	Streams         []Stream   `json:"streams"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (m *Match) TeamIdxToID(idx TeamIdx) uuid.UUID {
	if idx == Team1 {
		return m.Team1ID
	}
	return m.Team2ID
}

func (m *Match) TeamIDToIdx(teamID uuid.UUID) (TeamIdx, error) {
	switch teamID {
	case m.Team1ID:
		return Team1, nil
	case m.Team2ID:
		return Team2, nil
	default:
		return 0, fmt.Errorf("%w: team %s is not part of match %s", ErrIntegrity, teamID, m.ChannelID)
	}
}

func (m *Match) HasMiddleground() bool {
	return catalog.HasMiddleground(m.Team1ID, m.Team2ID)
}

func (m *Match) IsChoosingAdvantage() bool {
	return m.AdvantageChoice == nil
}

// Turn resolves which side must act. While the advantage is unchosen the
// coin-flip winner acts; afterwards turn order is offer-count parity
// adjusted by who was granted the first offer. Turn(true) returns the
// other side of the same formula, so the two can never agree.
func (m *Match) Turn(opponent bool) TeamIdx {
	if m.IsChoosingAdvantage() {
		if m.CoinFlip != opponent {
			return Team2
		}
		return Team1
	}

	adjust := 0
	if *m.AdvantageChoice != m.HasMiddleground() {
		adjust = 1
	}
	if ((len(m.Offers)+adjust)%2 == 0) != opponent {
		return Team2
	}
	return Team1
}

// GetsFirstOffer reports whether the side holds the general first-offer
// right. Under the middleground regime the advantage holder offers first;
// otherwise the advantage holder locked in Offer Advantage and the first
// offer went to the opponent.
func (m *Match) GetsFirstOffer(idx TeamIdx) bool {
	adv := m.AdvantageChoice != nil && *m.AdvantageChoice
	var first TeamIdx
	if m.HasMiddleground() == adv {
		first = Team2
	} else {
		first = Team1
	}
	return first == idx
}

// OffersForTeam returns the side's own offers in creation order.
func (m *Match) OffersForTeam(idx TeamIdx) []Offer {
	offset := 1
	if m.GetsFirstOffer(idx) {
		offset = 0
	}
	var out []Offer
	for i := offset; i < len(m.Offers); i += 2 {
		out = append(out, m.Offers[i])
	}
	return out
}

// MaxOffersForTeam is the side's share of the offer budget. The first
// offering side gets the extra offer when the budget is odd.
func (m *Match) MaxOffersForTeam(idx TeamIdx) int {
	if m.GetsFirstOffer(idx) {
		return m.MaxNumOffers/2 + m.MaxNumOffers%2
	}
	return m.MaxNumOffers / 2
}

// CanAcceptPastOffers reports whether the side may retroactively accept an
// offer older than the pending one. Always allowed under the middleground
// regime; otherwise only the side holding Offer Advantage kept the right.
func (m *Match) CanAcceptPastOffers(idx TeamIdx) bool {
	if m.HasMiddleground() {
		return true
	}
	if m.AdvantageChoice != nil && *m.AdvantageChoice {
		return idx == Team2
	}
	return idx == Team1
}

// IsOfferAvailable reports whether the latest offer is still unanswered.
func (m *Match) IsOfferAvailable() bool {
	return len(m.Offers) > 0 && m.Offers[len(m.Offers)-1].IsPending()
}

// IsDone reports whether an offer has been accepted, resolving the draft.
func (m *Match) IsDone() bool {
	return m.AcceptedOffer() != nil
}

func (m *Match) AcceptedOffer() *Offer {
	for i := range m.Offers {
		if m.Offers[i].Accepted != nil && *m.Offers[i].Accepted {
			return &m.Offers[i]
		}
	}
	return nil
}

func (m *Match) HasStarted() bool {
	return m.StartTime != nil && !m.StartTime.After(time.Now())
}

// Scores parses the free-text score field, accepting separators like
// "3-2", "3:2" or "3 / 2".
func (m *Match) Scores() (team1, team2 int, ok bool) {
	if m.Score == nil {
		return 0, 0, false
	}
	groups := scoreRe.FindStringSubmatch(*m.Score)
	if groups == nil {
		return 0, 0, false
	}
	team1, _ = strconv.Atoi(groups[1])
	team2, _ = strconv.Atoi(groups[2])
	return team1, team2, true
}

// TeamFaction resolves which in-game faction the side plays once the draft
// is done, honoring SidesFlipped.
func (m *Match) TeamFaction(idx TeamIdx) (catalog.Faction, error) {
	offer := m.AcceptedOffer()
	if offer == nil {
		return "", gameStateErrorf("match is not resolved yet")
	}
	details, err := offer.MapDetails()
	if err != nil {
		return "", err
	}
	flipped := m.SidesFlipped != nil && *m.SidesFlipped
	if (idx == Team1) != flipped {
		return details.Allies, nil
	}
	return details.Axis, nil
}

// CreateOffer appends a new pending offer proposed by the side whose turn
// it is. The environment must be one of the map's options and the layout
// adjacency-valid.
func (m *Match) CreateOffer(mapID string, env catalog.Environment, layout catalog.Layout) (*Offer, error) {
	if m.IsDone() {
		return nil, gameStateErrorf("match is already done")
	}
	if m.IsOfferAvailable() {
		return nil, gameStateErrorf("most recent offer is still unanswered")
	}

	offerNo := len(m.Offers) + 1
	if offerNo > m.MaxNumOffers {
		return nil, gameStateErrorf("offer exceeds max offer limit")
	}

	details, err := catalog.GetMap(mapID)
	if err != nil {
		return nil, err
	}
	if !details.AllowsEnvironment(env) {
		return nil, &catalog.LookupError{Kind: "environment", Key: string(env)}
	}
	if !layout.Valid() {
		return nil, &catalog.LookupError{Kind: "layout", Key: layout.String()}
	}

	m.Offers = append(m.Offers, Offer{
		ID:          uuid.New(),
		MatchID:     m.ID,
		OfferNo:     offerNo,
		TeamID:      m.TeamIdxToID(m.Turn(false)),
		Map:         mapID,
		Environment: env,
		Layout:      layout,
		CreatedAt:   time.Now(),
	})
	return &m.Offers[len(m.Offers)-1], nil
}

// AcceptOffer marks the offer with the given sequence number accepted and
// records the side assignment. Accepting anything but the latest offer is
// only legal for a side that kept the right to accept past offers, and
// simultaneously declines the pending offer.
func (m *Match) AcceptOffer(offerNo int, flipSides bool) error {
	offer := m.offerByNo(offerNo)
	if offer == nil {
		return fmt.Errorf("%w: offer %d is not part of match %s", ErrIntegrity, offerNo, m.ChannelID)
	}

	if m.IsDone() {
		return gameStateErrorf("match is already done")
	}
	if !m.IsOfferAvailable() {
		return gameStateErrorf("all offers have been answered already")
	}

	latest := &m.Offers[len(m.Offers)-1]
	if offer.OfferNo != latest.OfferNo {
		if !m.CanAcceptPastOffers(m.Turn(false)) {
			return gameStateErrorf("only the most recent offer can be accepted")
		}
		declined := false
		latest.Accepted = &declined
	}

	accepted := true
	offer.Accepted = &accepted
	m.SidesFlipped = &flipSides
	return nil
}

// SkipLatestOffer declines the pending offer, handing the turn to the
// other side. The final offer of the budget cannot be skipped: it can
// only be accepted, forcing resolution.
func (m *Match) SkipLatestOffer() error {
	if m.IsDone() {
		return gameStateErrorf("match is already done")
	}
	if !m.IsOfferAvailable() {
		return gameStateErrorf("all offers have been answered already")
	}
	if len(m.Offers) >= m.MaxNumOffers {
		return gameStateErrorf("final offer cannot be skipped")
	}

	declined := false
	m.Offers[len(m.Offers)-1].Accepted = &declined
	return nil
}

// TakeAdvantage records that the coin-flip winner kept the advantage for
// itself: first offer under the middleground regime, Offer Advantage
// otherwise.
func (m *Match) TakeAdvantage() error {
	if !m.IsChoosingAdvantage() {
		return gameStateErrorf("advantage has already been chosen")
	}
	choice := m.Turn(false) == Team2
	m.AdvantageChoice = &choice
	return nil
}

// GiveAdvantage records that the coin-flip winner handed the advantage to
// the opponent, keeping the server preference under the no-middleground
// regime.
func (m *Match) GiveAdvantage() error {
	if !m.IsChoosingAdvantage() {
		return gameStateErrorf("advantage has already been chosen")
	}
	choice := m.Turn(false) == Team1
	m.AdvantageChoice = &choice
	return nil
}

// Undo reverses exactly one transition, inferring which from the shape of
// the current state. The branch order is load-bearing: nothing-to-undo,
// then advantage rollback, then un-accept, then pending delete, then
// un-decline. Returns false when there is nothing left to undo.
func (m *Match) Undo() bool {
	if m.IsChoosingAdvantage() {
		return false
	}

	switch {
	case len(m.Offers) == 0:
		m.AdvantageChoice = nil

	case m.IsDone():
		m.AcceptedOffer().Accepted = nil
		m.SidesFlipped = nil

	case m.IsOfferAvailable():
		m.Offers = m.Offers[:len(m.Offers)-1]
		// A fresh match carries a nil ledger; keep the empty shapes equal.
		if len(m.Offers) == 0 {
			m.Offers = nil
		}

	default:
		m.Offers[len(m.Offers)-1].Accepted = nil
	}

	return true
}

func (m *Match) offerByNo(offerNo int) *Offer {
	for i := range m.Offers {
		if m.Offers[i].OfferNo == offerNo {
			return &m.Offers[i]
		}
	}
	return nil
}
