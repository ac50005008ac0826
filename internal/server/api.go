package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"lemonade/internal/config"
	"lemonade/internal/stand"
	"lemonade/internal/weather"
	staticfiles "lemonade/static"
)

// App holds what the handlers depend on. The presentation layer only ever
// talks to the engine; it never reaches into state fields directly.
type App struct {
	Engine  stand.Engine
	Balance config.Balance
	BootNow time.Time
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// errStatus maps engine errors onto HTTP: a plan the player cannot afford
// is a bad request, playing past the end of the run is a conflict.
func errStatus(err error) (int, string) {
	var insufficient stand.InsufficientFundsError
	switch {
	case errors.As(err, &insufficient):
		return http.StatusBadRequest, insufficient.Error()
	case errors.Is(err, stand.ErrGameOver):
		return http.StatusConflict, stand.ErrGameOver.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

// StateResponse is the read model for the front page: a snapshot of the
// run with money rounded to cents for display.
type StateResponse struct {
	Day      int             `json:"day"`
	Money    float64         `json:"money"`
	Forecast weather.Variant `json:"forecast"`
	GameOver bool            `json:"game_over"`
	CanPlay  bool            `json:"can_play"`
	NextPlan stand.Plan      `json:"next_plan"`
}

// OutcomeResponse is a resolved day with currency rounded for display.
type OutcomeResponse struct {
	Day           int          `json:"day"`
	Forecast      weather.Type `json:"forecast"`
	ActualWeather weather.Type `json:"actual_weather"`
	Ads           int          `json:"ads"`
	Cups          int          `json:"cups"`
	Price         float64      `json:"price"`
	Sales         int          `json:"sales"`
	Revenue       float64      `json:"revenue"`
	Cost          float64      `json:"cost"`
	Profit        float64      `json:"profit"`
	MoneyAfter    float64      `json:"money_after"`
}

type planRequest struct {
	Ads   int     `json:"ads"`
	Cups  int     `json:"cups"`
	Price float64 `json:"price"`
}

func stateResponse(st *stand.State, bal config.Balance) StateResponse {
	return StateResponse{
		Day:      st.Day,
		Money:    stand.Round2(st.Money),
		Forecast: st.Forecast,
		GameOver: st.GameOver,
		CanPlay:  st.CanPlay(bal),
		NextPlan: st.NextPlan,
	}
}

func outcomeResponse(out stand.Outcome) OutcomeResponse {
	return OutcomeResponse{
		Day:           out.Day,
		Forecast:      out.Forecast,
		ActualWeather: out.ActualWeather,
		Ads:           out.Ads,
		Cups:          out.Cups,
		Price:         out.Price,
		Sales:         out.Sales,
		Revenue:       stand.Round2(out.Revenue),
		Cost:          stand.Round2(out.Cost),
		Profit:        stand.Round2(out.Profit),
		MoneyAfter:    stand.Round2(out.MoneyAfter),
	}
}

func RegisterStatic(mux *http.ServeMux) {
	mux.Handle("GET /js/{file...}", http.FileServerFS(staticfiles.EmbeddedFS()))

	mux.HandleFunc("GET /{rest...}", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/":
			http.ServeFileFS(w, r, staticfiles.EmbeddedFS(), "index.html")
		case len(r.URL.Path) >= 5 && r.URL.Path[:5] == "/api/":
			http.NotFound(w, r)
		default:
			http.ServeFileFS(w, r, staticfiles.EmbeddedFS(), "index.html")
		}
	})
}

func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	engine := app.Engine
	bal := app.Balance

	Handle(mux, rr, "GET /api/state", "Current run snapshot", "", func(w http.ResponseWriter, r *http.Request) {
		st, err := engine.State(r.Context())
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, stateResponse(st, bal))
	})

	Handle(mux, rr, "GET /api/weather", "Weather catalog", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, weather.Variants())
	})

	Handle(mux, rr, "POST /api/plan/cost", "Preview a plan's cost", `{"ads":2,"cups":20,"price":1.25}`, func(w http.ResponseWriter, r *http.Request) {
		var body planRequest
		if err := decodeJSON(r, &body); err != nil {
			writeErr(w, 400, "invalid json body")
			return
		}

		st, err := engine.State(r.Context())
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}

		plan, cost := engine.PlanCost(stand.NewPlan(body.Ads, body.Cups, body.Price))
		writeJSON(w, 200, map[string]any{
			"plan":       plan,
			"cost":       stand.Round2(cost),
			"affordable": cost <= st.Money,
		})
	})

	Handle(mux, rr, "POST /api/day", "Commit a plan and play one day", `{"ads":0,"cups":10,"price":1.00}`, func(w http.ResponseWriter, r *http.Request) {
		var body planRequest
		if err := decodeJSON(r, &body); err != nil {
			writeErr(w, 400, "invalid json body")
			return
		}

		out, err := engine.PlayDay(r.Context(), stand.NewPlan(body.Ads, body.Cups, body.Price))
		if err != nil {
			code, msg := errStatus(err)
			writeErr(w, code, msg)
			return
		}

		st, err := engine.State(r.Context())
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}

		writeJSON(w, 200, map[string]any{
			"outcome": outcomeResponse(out),
			"state":   stateResponse(st, bal),
		})
	})

	Handle(mux, rr, "GET /api/history", "Recent days, newest first", "", func(w http.ResponseWriter, r *http.Request) {
		limit := bal.HistoryWindow
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				writeErr(w, 400, "limit must be a non-negative integer")
				return
			}
			limit = n
		}

		recent, err := engine.Recent(r.Context(), limit)
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}

		out := make([]OutcomeResponse, 0, len(recent))
		for _, day := range recent {
			out = append(out, outcomeResponse(day))
		}
		writeJSON(w, 200, out)
	})

	Handle(mux, rr, "GET /api/stats", "Full-ledger statistics", "", func(w http.ResponseWriter, r *http.Request) {
		stats, err := engine.Stats(r.Context())
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, stats)
	})

	Handle(mux, rr, "POST /api/game", "Start a fresh game", "", func(w http.ResponseWriter, r *http.Request) {
		st, err := engine.NewGame(r.Context())
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, stateResponse(st, bal))
	})

	Handle(mux, rr, "GET /api/routes", "List API routes", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, rr.List())
	})
}
