package integration

import (
	"context"
	"testing"

	"github.com/draftphase/draftphase-api/internal/catalog"
	"github.com/draftphase/draftphase-api/internal/models"
	"github.com/draftphase/draftphase-api/internal/services"
	"github.com/draftphase/draftphase-api/tests/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollService_Integration_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewPollService(tdb.DB)
	ctx := context.Background()

	user := fixtures.CreateUser(t)

	poll, err := svc.Create(ctx, "Who takes the series?", []string{"Team 1", "Team 2", "Draw"}, &user.ID)
	require.NoError(t, err)
	assert.False(t, poll.Closed)
	require.Len(t, poll.Options, 3)
	assert.Equal(t, "Team 1", poll.Options[0].Option)
	assert.Equal(t, 0, poll.Options[0].Position)

	loaded, err := svc.GetByID(ctx, poll.ID)
	require.NoError(t, err)
	assert.Equal(t, poll.Question, loaded.Question)
	require.Len(t, loaded.Options, 3)
	assert.Equal(t, 0, loaded.Options[0].Votes)
}

func TestPollService_Integration_MapVote(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewPollService(tdb.DB)
	ctx := context.Background()

	user := fixtures.CreateUser(t)

	poll, err := svc.CreateMapVote(ctx, "", &user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Which map should be played?", poll.Question)

	mapIDs := catalog.MapIDs()
	require.Len(t, poll.Options, len(mapIDs))
	for i, opt := range poll.Options {
		assert.Equal(t, mapIDs[i], opt.Option)
		assert.Equal(t, i, opt.Position)
	}
}

func TestPollService_Integration_CreateNeedsTwoOptions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewPollService(tdb.DB)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Pointless?", []string{"Yes"}, nil)
	var gameStateErr *models.GameStateError
	require.ErrorAs(t, err, &gameStateErr)
}

func TestPollService_Integration_VoteMovesBetweenOptions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewPollService(tdb.DB)
	ctx := context.Background()

	poll, err := svc.Create(ctx, "Map of the week?", []string{"Carentan", "Foy"}, nil)
	require.NoError(t, err)

	teams := testutil.TeamsByRegion(catalog.RegionEU)
	require.NoError(t, svc.Vote(ctx, poll.ID, teams[0], poll.Options[0].ID))
	require.NoError(t, svc.Vote(ctx, poll.ID, teams[1], poll.Options[0].ID))

	loaded, err := svc.GetByID(ctx, poll.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Options[0].Votes)
	assert.Equal(t, 0, loaded.Options[1].Votes)

	// A repeat vote moves the team, it does not stack.
	require.NoError(t, svc.Vote(ctx, poll.ID, teams[1], poll.Options[1].ID))

	loaded, err = svc.GetByID(ctx, poll.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Options[0].Votes)
	assert.Equal(t, 1, loaded.Options[1].Votes)
}

func TestPollService_Integration_VoteRejectsForeignOption(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewPollService(tdb.DB)
	ctx := context.Background()

	poll, err := svc.Create(ctx, "Map of the week?", []string{"Carentan", "Foy"}, nil)
	require.NoError(t, err)
	other, err := svc.Create(ctx, "Second poll?", []string{"Yes", "No"}, nil)
	require.NoError(t, err)

	teams := testutil.TeamsByRegion(catalog.RegionEU)
	err = svc.Vote(ctx, poll.ID, teams[0], other.Options[0].ID)
	assert.ErrorIs(t, err, models.ErrIntegrity)
}

func TestPollService_Integration_CloseStopsVoting(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewPollService(tdb.DB)
	ctx := context.Background()

	poll, err := svc.Create(ctx, "Map of the week?", []string{"Carentan", "Foy"}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Close(ctx, poll.ID))

	teams := testutil.TeamsByRegion(catalog.RegionEU)
	err = svc.Vote(ctx, poll.ID, teams[0], poll.Options[0].ID)
	var gameStateErr *models.GameStateError
	require.ErrorAs(t, err, &gameStateErr)

	loaded, err := svc.GetByID(ctx, poll.ID)
	require.NoError(t, err)
	assert.True(t, loaded.Closed)
}

func TestPollService_Integration_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewPollService(tdb.DB)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, services.ErrPollNotFound)

	assert.ErrorIs(t, svc.Close(ctx, uuid.New()), services.ErrPollNotFound)
}
