package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lemonade/internal/config"
	"lemonade/internal/recorder"
	"lemonade/internal/stand"
	"lemonade/internal/weather"
)

type testApp struct {
	handler http.Handler
	rand    *weather.ScriptedRand
	engine  stand.Engine
}

// newTestApp wires the API onto a scripted randomness source and starts a
// game with a Mild opening forecast.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	r := weather.NewScriptedRand()
	engine := stand.Engine{
		States:   stand.NewMemoryStateRepo(),
		Rand:     r,
		Balance:  config.Default(),
		Recorder: recorder.NewNoopRecorder(),
		Log:      zap.NewNop(),
	}

	r.PushInt(2) // Mild
	_, err := engine.NewGame(context.Background())
	require.NoError(t, err)

	mux := http.NewServeMux()
	rr := &RouteRegistry{}
	RegisterAPIRoutes(mux, rr, &App{Engine: engine, Balance: engine.Balance, BootNow: time.Now()})

	return &testApp{handler: mux, rand: r, engine: engine}
}

func (ta *testApp) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ta.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestGetState(t *testing.T) {
	ta := newTestApp(t)

	rec := ta.do(t, http.MethodGet, "/api/state", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	st := decodeBody[StateResponse](t, rec)
	require.Equal(t, 1, st.Day)
	require.Equal(t, 5.00, st.Money)
	require.Equal(t, weather.TypeMild, st.Forecast.Type)
	require.False(t, st.GameOver)
	require.True(t, st.CanPlay)
	require.Equal(t, stand.DefaultPlan(), st.NextPlan)
}

func TestGetWeatherCatalog(t *testing.T) {
	ta := newTestApp(t)

	rec := ta.do(t, http.MethodGet, "/api/weather", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	variants := decodeBody[[]weather.Variant](t, rec)
	require.Len(t, variants, 6)
	require.Equal(t, weather.TypeHot, variants[0].Type)
	require.Equal(t, weather.TypeStormy, variants[5].Type)
}

func TestPostDay(t *testing.T) {
	ta := newTestApp(t)

	// Forecast holds on Mild, then Sunny tomorrow.
	ta.rand.PushFloat(0.5)
	ta.rand.PushInt(1)

	rec := ta.do(t, http.MethodPost, "/api/day", map[string]any{
		"ads": 0, "cups": 10, "price": 1.00,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[struct {
		Outcome OutcomeResponse `json:"outcome"`
		State   StateResponse   `json:"state"`
	}](t, rec)

	require.Equal(t, 1, body.Outcome.Day)
	require.Equal(t, weather.TypeMild, body.Outcome.ActualWeather)
	require.Equal(t, 10, body.Outcome.Sales)
	require.Equal(t, 10.00, body.Outcome.Revenue)
	require.Equal(t, 0.75, body.Outcome.Cost)
	require.Equal(t, 9.25, body.Outcome.Profit)
	require.Equal(t, 14.25, body.Outcome.MoneyAfter)

	require.Equal(t, 2, body.State.Day)
	require.Equal(t, 14.25, body.State.Money)
	require.Equal(t, weather.TypeSunny, body.State.Forecast.Type)
}

func TestPostDayInvalidBody(t *testing.T) {
	ta := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/day", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	ta.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostDayInsufficientFunds(t *testing.T) {
	ta := newTestApp(t)

	// 20 ads cost $10.25, well past the starting $5.
	rec := ta.do(t, http.MethodPost, "/api/day", map[string]any{
		"ads": 20, "cups": 0, "price": 1.00,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody[map[string]string](t, rec)
	require.Contains(t, body["error"], "insufficient funds")

	// Nothing was committed.
	st := decodeBody[StateResponse](t, ta.do(t, http.MethodGet, "/api/state", nil))
	require.Equal(t, 1, st.Day)
	require.Equal(t, 5.00, st.Money)
}

func TestPostDayAfterGameOver(t *testing.T) {
	ta := newTestApp(t)

	ended := stand.NewState(config.Default(), weather.Variants()[2])
	ended.Money = 0.01
	ended.GameOver = true
	require.NoError(t, ta.engine.States.Set(context.Background(), ended))

	rec := ta.do(t, http.MethodPost, "/api/day", map[string]any{
		"ads": 0, "cups": 1, "price": 1.00,
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	body := decodeBody[map[string]string](t, rec)
	require.Contains(t, body["error"], "game over")
}

func TestPostPlanCost(t *testing.T) {
	ta := newTestApp(t)

	rec := ta.do(t, http.MethodPost, "/api/plan/cost", map[string]any{
		"ads": 2, "cups": 10, "price": 1.25,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[struct {
		Plan       stand.Plan `json:"plan"`
		Cost       float64    `json:"cost"`
		Affordable bool       `json:"affordable"`
	}](t, rec)
	require.Equal(t, 1.75, body.Cost)
	require.True(t, body.Affordable)

	// The preview never mutates state.
	st := decodeBody[StateResponse](t, ta.do(t, http.MethodGet, "/api/state", nil))
	require.Equal(t, 5.00, st.Money)
}

func TestGetHistory(t *testing.T) {
	ta := newTestApp(t)

	for i := 0; i < 3; i++ {
		ta.rand.PushFloat(0.5) // forecast holds
		ta.rand.PushInt(2)     // Mild again tomorrow
		rec := ta.do(t, http.MethodPost, "/api/day", map[string]any{
			"ads": 0, "cups": 5, "price": 1.00,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := ta.do(t, http.MethodGet, "/api/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	days := decodeBody[[]OutcomeResponse](t, rec)
	require.Len(t, days, 3)
	require.Equal(t, 3, days[0].Day) // newest first
	require.Equal(t, 1, days[2].Day)

	rec = ta.do(t, http.MethodGet, "/api/history?limit=2", nil)
	days = decodeBody[[]OutcomeResponse](t, rec)
	require.Len(t, days, 2)
	require.Equal(t, 3, days[0].Day)

	rec = ta.do(t, http.MethodGet, "/api/history?limit=banana", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStats(t *testing.T) {
	ta := newTestApp(t)

	ta.rand.PushFloat(0.5)
	ta.rand.PushInt(2)
	rec := ta.do(t, http.MethodPost, "/api/day", map[string]any{
		"ads": 0, "cups": 5, "price": 1.00,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ta.do(t, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decodeBody[stand.Stats](t, rec)
	require.Equal(t, 1, stats.DaysPlayed)
	require.Equal(t, 5, stats.TotalSales)
	require.Equal(t, 1, stats.SellOutDays)
	require.Equal(t, 1, stats.ForecastHits)
}

func TestPostNewGame(t *testing.T) {
	ta := newTestApp(t)

	ta.rand.PushFloat(0.5)
	ta.rand.PushInt(2)
	rec := ta.do(t, http.MethodPost, "/api/day", map[string]any{
		"ads": 0, "cups": 5, "price": 1.00,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	ta.rand.PushInt(0) // Hot opening forecast for the fresh run
	rec = ta.do(t, http.MethodPost, "/api/game", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	st := decodeBody[StateResponse](t, rec)
	require.Equal(t, 1, st.Day)
	require.Equal(t, 5.00, st.Money)
	require.Equal(t, weather.TypeHot, st.Forecast.Type)
	require.False(t, st.GameOver)

	rec = ta.do(t, http.MethodGet, "/api/history", nil)
	require.Equal(t, []OutcomeResponse{}, decodeBody[[]OutcomeResponse](t, rec))
}

func TestGetRoutes(t *testing.T) {
	ta := newTestApp(t)

	rec := ta.do(t, http.MethodGet, "/api/routes", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	docs := decodeBody[[]RouteDoc](t, rec)
	require.NotEmpty(t, docs)

	patterns := make([]string, 0, len(docs))
	for _, d := range docs {
		patterns = append(patterns, d.Method+" "+d.Pattern)
	}
	require.Contains(t, patterns, "GET /api/state")
	require.Contains(t, patterns, "POST /api/day")
	require.Contains(t, patterns, "GET /api/routes")
}
