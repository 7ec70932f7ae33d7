package services

import (
	"context"
	"testing"
	"time"

	"github.com/draftphase/draftphase-api/internal/catalog"
	"github.com/draftphase/draftphase-api/internal/database"
	"github.com/draftphase/draftphase-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMatchService(t *testing.T) (*MatchService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewMatchService(db), mock
}

func teamPair(t *testing.T, region catalog.Region) (uuid.UUID, uuid.UUID) {
	t.Helper()
	var ids []uuid.UUID
	for _, team := range catalog.SortedTeams() {
		if team.Region == region {
			ids = append(ids, team.ID)
		}
	}
	require.GreaterOrEqual(t, len(ids), 2)
	return ids[0], ids[1]
}

var matchColumns = []string{
	"id", "channel_id", "message_id", "team1_id", "team2_id", "subtitle", "start_time", "score",
	"max_num_offers", "coin_flip", "advantage_choice", "sides_flipped", "stream_delay",
	"created_at", "updated_at",
}

func matchRow(m *models.Match) *pgxmock.Rows {
	return pgxmock.NewRows(matchColumns).AddRow(
		m.ID, m.ChannelID, m.MessageID, m.Team1ID, m.Team2ID, m.Subtitle, m.StartTime, m.Score,
		m.MaxNumOffers, m.CoinFlip, m.AdvantageChoice, m.SidesFlipped, m.StreamDelay,
		m.CreatedAt, m.UpdatedAt,
	)
}

var offerColumns = []string{"id", "match_id", "offer_no", "team_id", "map", "environment", "layout", "accepted", "created_at"}

var streamColumns = []string{"id", "match_id", "lang", "created_at", "user_id", "name", "channel_url", "caster_created_at", "caster_updated_at"}

func offerRow(rows *pgxmock.Rows, o *models.Offer) *pgxmock.Rows {
	return rows.AddRow(
		o.ID, o.MatchID, o.OfferNo, o.TeamID, o.Map, o.Environment, o.Layout.String(), o.Accepted, o.CreatedAt,
	)
}

// expectLoadChildren queues the offers and streams queries that hang off
// every match read.
func expectLoadChildren(mock pgxmock.PgxPoolIface, matchID uuid.UUID, offers ...*models.Offer) {
	offerRows := pgxmock.NewRows(offerColumns)
	for _, o := range offers {
		offerRow(offerRows, o)
	}
	mock.ExpectQuery(`FROM offers WHERE match_id`).
		WithArgs(matchID).
		WillReturnRows(offerRows)
	mock.ExpectQuery(`FROM streams st`).
		WithArgs(matchID).
		WillReturnRows(pgxmock.NewRows(streamColumns))
}

func baseMatch(t *testing.T) *models.Match {
	team1, team2 := teamPair(t, catalog.RegionEU)
	now := time.Now()
	return &models.Match{
		ID:           uuid.New(),
		ChannelID:    "chan-1",
		Team1ID:      team1,
		Team2ID:      team2,
		MaxNumOffers: 12,
		CoinFlip:     false,
		StreamDelay:  15,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestMatchService_Create(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()
	team1, team2 := teamPair(t, catalog.RegionEU)
	matchID := uuid.New()
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
		AddRow(matchID, now, now)
	mock.ExpectQuery(`INSERT INTO matches`).
		WithArgs("chan-1", team1, team2, pgxmock.AnyArg(), pgxmock.AnyArg(), 12, pgxmock.AnyArg(), 15).
		WillReturnRows(rows)

	match, err := svc.Create(ctx, CreateMatchParams{
		ChannelID:   "chan-1",
		Team1ID:     team1,
		Team2ID:     team2,
		MaxOffers:   12,
		StreamDelay: 15,
	})

	require.NoError(t, err)
	assert.Equal(t, matchID, match.ID)
	assert.Equal(t, "chan-1", match.ChannelID)
	assert.Equal(t, 12, match.MaxNumOffers)
	assert.True(t, match.IsChoosingAdvantage())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchService_Create_UnknownTeam(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()
	team1, _ := teamPair(t, catalog.RegionEU)

	_, err := svc.Create(ctx, CreateMatchParams{
		ChannelID: "chan-1",
		Team1ID:   team1,
		Team2ID:   uuid.New(),
		MaxOffers: 12,
	})

	var lookupErr *catalog.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "team", lookupErr.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchService_Create_DuplicateChannel(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()
	team1, team2 := teamPair(t, catalog.RegionEU)

	mock.ExpectQuery(`INSERT INTO matches`).
		WithArgs("chan-1", team1, team2, pgxmock.AnyArg(), pgxmock.AnyArg(), 12, pgxmock.AnyArg(), 15).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := svc.Create(ctx, CreateMatchParams{
		ChannelID:   "chan-1",
		Team1ID:     team1,
		Team2ID:     team2,
		MaxOffers:   12,
		StreamDelay: 15,
	})

	var gameStateErr *models.GameStateError
	require.ErrorAs(t, err, &gameStateErr)
	assert.Contains(t, gameStateErr.Reason, "already exists")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchService_GetByChannelID(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()
	stored := baseMatch(t)

	mock.ExpectQuery(`FROM matches WHERE channel_id`).
		WithArgs("chan-1").
		WillReturnRows(matchRow(stored))
	expectLoadChildren(mock, stored.ID)

	match, err := svc.GetByChannelID(ctx, "chan-1")

	require.NoError(t, err)
	assert.Equal(t, stored.ID, match.ID)
	assert.Empty(t, match.Offers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchService_GetByChannelID_WithOffers(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()
	stored := baseMatch(t)
	choice := false
	stored.AdvantageChoice = &choice

	offer := &models.Offer{
		ID:          uuid.New(),
		MatchID:     stored.ID,
		OfferNo:     1,
		TeamID:      stored.Team1ID,
		Map:         "Carentan",
		Environment: catalog.EnvDay,
		Layout:      catalog.Layout{1, 1, 1},
		CreatedAt:   time.Now(),
	}

	mock.ExpectQuery(`FROM matches WHERE channel_id`).
		WithArgs("chan-1").
		WillReturnRows(matchRow(stored))
	expectLoadChildren(mock, stored.ID, offer)

	match, err := svc.GetByChannelID(ctx, "chan-1")

	require.NoError(t, err)
	require.Len(t, match.Offers, 1)
	assert.Equal(t, catalog.Layout{1, 1, 1}, match.Offers[0].Layout)
	assert.True(t, match.IsOfferAvailable())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchService_GetByChannelID_NotFound(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()

	mock.ExpectQuery(`FROM matches WHERE channel_id`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.GetByChannelID(ctx, "missing")

	assert.ErrorIs(t, err, ErrMatchNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchService_List(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()
	first := baseMatch(t)
	second := baseMatch(t)
	second.ID = uuid.New()
	second.ChannelID = "chan-2"

	rows := matchRow(first)
	rows.AddRow(
		second.ID, second.ChannelID, second.MessageID, second.Team1ID, second.Team2ID,
		second.Subtitle, second.StartTime, second.Score, second.MaxNumOffers, second.CoinFlip,
		second.AdvantageChoice, second.SidesFlipped, second.StreamDelay,
		second.CreatedAt, second.UpdatedAt,
	)
	mock.ExpectQuery(`FROM matches\s+ORDER BY start_time`).
		WillReturnRows(rows)

	matches, err := svc.List(ctx)

	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "chan-1", matches[0].ChannelID)
	assert.Equal(t, "chan-2", matches[1].ChannelID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchService_Delete(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM matches`).
		WithArgs("chan-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, svc.Delete(ctx, "chan-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchService_Delete_NotFound(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM matches`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrMatchNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchService_SetScore_NotFound(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()
	score := "3-2"

	mock.ExpectExec(`UPDATE matches SET score`).
		WithArgs(&score, "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, svc.SetScore(ctx, "missing", &score), ErrMatchNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchService_UpdateDetails(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()
	subtitle := "Grand Final"

	mock.ExpectExec(`UPDATE matches\s+SET subtitle = COALESCE`).
		WithArgs(&subtitle, (*time.Time)(nil), "chan-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, svc.UpdateDetails(ctx, "chan-1", &subtitle, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchService_UpdateDetails_NotFound(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()
	subtitle := "Grand Final"

	mock.ExpectExec(`UPDATE matches\s+SET subtitle = COALESCE`).
		WithArgs(&subtitle, (*time.Time)(nil), "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, svc.UpdateDetails(ctx, "missing", &subtitle, nil), ErrMatchNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// expectSaveDraftState queues the writes mutate performs after the draft
// transition succeeded.
func expectSaveDraftState(mock pgxmock.PgxPoolIface, matchID uuid.UUID, offerCount int) {
	mock.ExpectExec(`UPDATE matches SET advantage_choice`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), matchID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`DELETE FROM offers WHERE match_id = \$1 AND offer_no > \$2`).
		WithArgs(matchID, offerCount).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	for i := 0; i < offerCount; i++ {
		mock.ExpectExec(`INSERT INTO offers`).
			WithArgs(pgxmock.AnyArg(), matchID, pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
}

func TestMatchService_TakeAdvantage(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()
	stored := baseMatch(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM matches WHERE channel_id = \$1\s+FOR UPDATE`).
		WithArgs("chan-1").
		WillReturnRows(matchRow(stored))
	expectLoadChildren(mock, stored.ID)
	expectSaveDraftState(mock, stored.ID, 0)
	mock.ExpectCommit()

	match, err := svc.TakeAdvantage(ctx, "chan-1")

	require.NoError(t, err)
	require.NotNil(t, match.AdvantageChoice)
	// Coin flip lost by team 2, so team 1 keeps the advantage.
	assert.False(t, *match.AdvantageChoice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchService_TakeAdvantage_AlreadyChosen(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()
	stored := baseMatch(t)
	choice := true
	stored.AdvantageChoice = &choice

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM matches WHERE channel_id = \$1\s+FOR UPDATE`).
		WithArgs("chan-1").
		WillReturnRows(matchRow(stored))
	expectLoadChildren(mock, stored.ID)
	mock.ExpectRollback()

	_, err := svc.TakeAdvantage(ctx, "chan-1")

	var gameStateErr *models.GameStateError
	require.ErrorAs(t, err, &gameStateErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchService_CreateOffer(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()
	stored := baseMatch(t)
	choice := false
	stored.AdvantageChoice = &choice

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM matches WHERE channel_id = \$1\s+FOR UPDATE`).
		WithArgs("chan-1").
		WillReturnRows(matchRow(stored))
	expectLoadChildren(mock, stored.ID)
	expectSaveDraftState(mock, stored.ID, 1)
	mock.ExpectCommit()

	match, err := svc.CreateOffer(ctx, "chan-1", "Carentan", catalog.EnvDay, catalog.Layout{1, 1, 1})

	require.NoError(t, err)
	require.Len(t, match.Offers, 1)
	assert.Equal(t, 1, match.Offers[0].OfferNo)
	assert.Equal(t, stored.Team1ID, match.Offers[0].TeamID)
	assert.True(t, match.IsOfferAvailable())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchService_CreateOffer_PendingOfferBlocks(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()
	stored := baseMatch(t)
	choice := false
	stored.AdvantageChoice = &choice

	pending := &models.Offer{
		ID:          uuid.New(),
		MatchID:     stored.ID,
		OfferNo:     1,
		TeamID:      stored.Team1ID,
		Map:         "Carentan",
		Environment: catalog.EnvDay,
		Layout:      catalog.Layout{1, 1, 1},
		CreatedAt:   time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM matches WHERE channel_id = \$1\s+FOR UPDATE`).
		WithArgs("chan-1").
		WillReturnRows(matchRow(stored))
	expectLoadChildren(mock, stored.ID, pending)
	mock.ExpectRollback()

	_, err := svc.CreateOffer(ctx, "chan-1", "Foy", catalog.EnvNight, catalog.Layout{0, 1, 1})

	var gameStateErr *models.GameStateError
	require.ErrorAs(t, err, &gameStateErr)
	assert.Contains(t, gameStateErr.Reason, "unanswered")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchService_AcceptOffer(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()
	stored := baseMatch(t)
	choice := false
	stored.AdvantageChoice = &choice

	pending := &models.Offer{
		ID:          uuid.New(),
		MatchID:     stored.ID,
		OfferNo:     1,
		TeamID:      stored.Team1ID,
		Map:         "Carentan",
		Environment: catalog.EnvDay,
		Layout:      catalog.Layout{1, 1, 1},
		CreatedAt:   time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM matches WHERE channel_id = \$1\s+FOR UPDATE`).
		WithArgs("chan-1").
		WillReturnRows(matchRow(stored))
	expectLoadChildren(mock, stored.ID, pending)
	expectSaveDraftState(mock, stored.ID, 1)
	mock.ExpectCommit()

	match, err := svc.AcceptOffer(ctx, "chan-1", 1, false)

	require.NoError(t, err)
	assert.True(t, match.IsDone())
	require.NotNil(t, match.SidesFlipped)
	assert.False(t, *match.SidesFlipped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchService_Undo_NothingToUndo(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()
	stored := baseMatch(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM matches WHERE channel_id = \$1\s+FOR UPDATE`).
		WithArgs("chan-1").
		WillReturnRows(matchRow(stored))
	expectLoadChildren(mock, stored.ID)
	expectSaveDraftState(mock, stored.ID, 0)
	mock.ExpectCommit()

	match, undone, err := svc.Undo(ctx, "chan-1")

	require.NoError(t, err)
	assert.False(t, undone)
	assert.True(t, match.IsChoosingAdvantage())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchService_Undo_RollsBackAdvantage(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()
	stored := baseMatch(t)
	choice := false
	stored.AdvantageChoice = &choice

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM matches WHERE channel_id = \$1\s+FOR UPDATE`).
		WithArgs("chan-1").
		WillReturnRows(matchRow(stored))
	expectLoadChildren(mock, stored.ID)
	expectSaveDraftState(mock, stored.ID, 0)
	mock.ExpectCommit()

	match, undone, err := svc.Undo(ctx, "chan-1")

	require.NoError(t, err)
	assert.True(t, undone)
	assert.True(t, match.IsChoosingAdvantage())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMatchService_Mutate_MatchNotFound(t *testing.T) {
	svc, mock := setupMatchService(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM matches WHERE channel_id = \$1\s+FOR UPDATE`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := svc.TakeAdvantage(ctx, "missing")

	assert.ErrorIs(t, err, ErrMatchNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
