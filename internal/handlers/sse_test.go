package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/draftphase/draftphase-api/internal/middleware"
	"github.com/draftphase/draftphase-api/internal/services"
	"github.com/draftphase/draftphase-api/internal/sse"
	"github.com/draftphase/draftphase-api/tests/testutil"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupSSETest(t *testing.T) (*testutil.MockHub, *testutil.MockMatchService, http.Handler, *services.JWTService) {
	t.Helper()
	mockHub := new(testutil.MockHub)
	mockMatchService := new(testutil.MockMatchService)
	handler := NewSSEHandler(mockHub, mockMatchService)
	jwtSvc := newTestJWTService()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/sse/:clientId/subscribe/:channelId", handler.Subscribe)
	app.Post("/sse/:clientId/unsubscribe/:channelId", handler.Unsubscribe)

	return mockHub, mockMatchService, app, jwtSvc
}

func TestSSEHandler_Subscribe_Success(t *testing.T) {
	mockHub, mockMatchService, app, jwtSvc := setupSSETest(t)

	clientID := uuid.New().String()
	match := testMatch(t)

	mockMatchService.On("GetByChannelID", mock.Anything, "chan-1").Return(match, nil)
	mockHub.On("SubscribeToMatch", clientID, "chan-1").Return()

	token := generateTestToken(t, jwtSvc, uuid.New(), "test@example.com")
	req := httptest.NewRequest(http.MethodPost, "/sse/"+clientID+"/subscribe/chan-1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "subscribed to match")

	mockMatchService.AssertExpectations(t)
	mockHub.AssertExpectations(t)
}

func TestSSEHandler_Subscribe_MatchNotFound(t *testing.T) {
	_, mockMatchService, app, jwtSvc := setupSSETest(t)

	clientID := uuid.New().String()
	mockMatchService.On("GetByChannelID", mock.Anything, "missing").
		Return(nil, services.ErrMatchNotFound)

	token := generateTestToken(t, jwtSvc, uuid.New(), "test@example.com")
	req := httptest.NewRequest(http.MethodPost, "/sse/"+clientID+"/subscribe/missing", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "match not found")
}

func TestSSEHandler_Subscribe_NotAuthenticated(t *testing.T) {
	_, _, app, _ := setupSSETest(t)

	req := httptest.NewRequest(http.MethodPost, "/sse/client-1/subscribe/chan-1", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSSEHandler_Unsubscribe_Success(t *testing.T) {
	mockHub, _, app, jwtSvc := setupSSETest(t)

	clientID := uuid.New().String()
	mockHub.On("UnsubscribeFromMatch", clientID, "chan-1").Return()

	token := generateTestToken(t, jwtSvc, uuid.New(), "test@example.com")
	req := httptest.NewRequest(http.MethodPost, "/sse/"+clientID+"/unsubscribe/chan-1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsubscribed from match")

	mockHub.AssertExpectations(t)
}

func TestSSEHandler_NewSSEHandler(t *testing.T) {
	hub := sse.NewHub()
	mockMatchService := new(testutil.MockMatchService)

	handler := NewSSEHandler(hub, mockMatchService)

	assert.NotNil(t, handler)
	assert.Equal(t, hub, handler.hub)
}
