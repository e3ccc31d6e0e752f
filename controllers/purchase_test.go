package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	redis_models "Wurder/models/redis"
	"Wurder/services/gamestore"
	"Wurder/services/purchase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPurchaseService struct {
	result *purchase.Result
	err    error

	gotPayload *purchase.Payload
}

func (s *stubPurchaseService) Purchase(ctx context.Context, payload *purchase.Payload) (*purchase.Result, error) {
	s.gotPayload = payload
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func purchaseRouter(service PurchaseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/purchase", PurchaseGame(service))
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPurchaseGameReturnsResult(t *testing.T) {
	service := &stubPurchaseService{
		result: &purchase.Result{
			Code:    "ABCDEF",
			Players: 10,
			Addons:  []string{"Guilds"},
			Price:   15,
		},
	}
	router := purchaseRouter(service)

	w := postJSON(router, "/purchase", `{"gameName":"Friday Night","players":10,"addons":["Guilds"]}`)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Code    string   `json:"code"`
		Players int      `json:"players"`
		Addons  []string `json:"addons"`
		Price   int      `json:"price"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ABCDEF", response.Code)
	assert.Equal(t, 10, response.Players)
	assert.Equal(t, []string{"Guilds"}, response.Addons)
	assert.Equal(t, 15, response.Price)

	// The raw payload reaches the service untyped
	require.NotNil(t, service.gotPayload)
	assert.Equal(t, "Friday Night", service.gotPayload.GameName)
	assert.Equal(t, float64(10), service.gotPayload.Players)
}

func TestPurchaseGameRejectsMalformedBody(t *testing.T) {
	router := purchaseRouter(&stubPurchaseService{})

	w := postJSON(router, "/purchase", `{"gameName":`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request payload."}`, w.Body.String())
}

func TestPurchaseGameSurfacesValidationMessage(t *testing.T) {
	router := purchaseRouter(&stubPurchaseService{err: purchase.ErrEmptyGameName})

	w := postJSON(router, "/purchase", `{"players":4}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Please enter a game name."}`, w.Body.String())
}

func TestPurchaseGameHidesInternalFailures(t *testing.T) {
	router := purchaseRouter(&stubPurchaseService{err: purchase.ErrCodesExhausted})

	w := postJSON(router, "/purchase", `{"gameName":"Friday Night","players":4}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Something went wrong. Please try again."}`, w.Body.String())
}

type stubGameLookup struct {
	games map[string]*redis_models.StoredGame
}

func (s *stubGameLookup) GetGame(ctx context.Context, code string) (*redis_models.StoredGame, error) {
	if game, ok := s.games[code]; ok {
		return game, nil
	}
	return nil, gamestore.ErrGameNotFound
}

func gameRouter(lookup GameLookup, offline *purchase.OfflineStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/games/:code", GetGameInfo(lookup, offline))
	return router
}

func TestGetGameInfoReturnsStoredGame(t *testing.T) {
	lookup := &stubGameLookup{games: map[string]*redis_models.StoredGame{
		"ABCDEF": {Code: "ABCDEF", Name: "Friday Night", Price: 15},
	}}
	router := gameRouter(lookup, purchase.NewOfflineStore())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/games/abcdef", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Friday Night"`)
}

func TestGetGameInfoFallsBackToOfflineStore(t *testing.T) {
	offline := purchase.NewOfflineStore()
	offline.Put(&redis_models.StoredGame{Code: "GHJKLM", Name: "Parked Game"})
	router := gameRouter(&stubGameLookup{}, offline)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/games/GHJKLM", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Parked Game"`)
}

func TestGetGameInfoNotFound(t *testing.T) {
	router := gameRouter(&stubGameLookup{}, purchase.NewOfflineStore())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/games/ZZZZZZ", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Game not found"}`, w.Body.String())
}
