package stand

import (
	"context"

	"go.uber.org/zap"

	"lemonade/internal/config"
	"lemonade/internal/recorder"
	"lemonade/internal/weather"
)

// Engine composes the planner, the weather draws and the resolver over a
// state repository. It holds no game state of its own.
type Engine struct {
	States   StateRepository
	Rand     weather.Rand
	Balance  config.Balance
	Recorder recorder.Recorder
	Log      *zap.Logger
}

// NewGame starts a fresh run: starting money, day 1, a drawn forecast and
// an empty ledger. Any previous run in the repository is replaced.
func (e Engine) NewGame(ctx context.Context) (*State, error) {
	st := NewState(e.Balance, weather.Forecast(e.Rand))
	if err := e.States.Set(ctx, st); err != nil {
		return nil, err
	}
	e.logger().Info("new game started",
		zap.Float64("money", st.Money),
		zap.String("forecast", string(st.Forecast.Type)),
	)
	return st, nil
}

// State returns a snapshot of the current run. Side-effect free.
func (e Engine) State(ctx context.Context) (*State, error) {
	return e.States.Get(ctx)
}

// Recent returns the last n resolved days, most recent first.
func (e Engine) Recent(ctx context.Context, n int) ([]Outcome, error) {
	st, err := e.States.Get(ctx)
	if err != nil {
		return nil, err
	}
	return st.History.Recent(n), nil
}

// Stats aggregates the full ledger of the current run.
func (e Engine) Stats(ctx context.Context) (Stats, error) {
	st, err := e.States.Get(ctx)
	if err != nil {
		return Stats{}, err
	}
	return CalculateStats(st.History), nil
}

// PlanCost previews what a plan would cost under the current balance,
// after clamping. Pure helper for input screens.
func (e Engine) PlanCost(plan Plan) (Plan, float64) {
	plan = plan.Clamped()
	return plan, plan.Cost(e.Balance)
}

// PlayDay runs one full day: validate the plan, draw the actual weather,
// resolve, apply, draw the next forecast. The sequence is atomic: on any
// failure the stored state is untouched and the error says why. Weather
// draws happen in a fixed order (actual first, then next forecast) so a
// replay against the same random source reproduces the run.
func (e Engine) PlayDay(ctx context.Context, plan Plan) (Outcome, error) {
	st, err := e.States.Get(ctx)
	if err != nil {
		return Outcome{}, err
	}

	if !st.CanPlay(e.Balance) {
		return Outcome{}, ErrGameOver
	}

	plan = plan.Clamped()
	if _, err := plan.Validate(e.Balance, st.Money); err != nil {
		return Outcome{}, err
	}

	actual := weather.Actual(e.Rand, st.Forecast, e.Balance.ForecastAccuracy)
	out := Resolve(plan, st.Forecast, actual, e.Balance)
	out = st.Apply(out, weather.Forecast(e.Rand), e.Balance)

	if err := e.States.Set(ctx, st); err != nil {
		return Outcome{}, err
	}

	e.record(out, st.GameOver)
	e.logger().Info("day resolved",
		zap.Int("day", out.Day),
		zap.String("forecast", string(out.Forecast)),
		zap.String("actual_weather", string(out.ActualWeather)),
		zap.Int("sales", out.Sales),
		zap.Float64("profit", Round2(out.Profit)),
		zap.Float64("money_after", Round2(out.MoneyAfter)),
		zap.Bool("game_over", st.GameOver),
	)

	return out, nil
}

// record ships the outcome to the configured recorder. A broken statistics
// sink must not abort a day that already resolved, so failures only log.
func (e Engine) record(out Outcome, gameOver bool) {
	if e.Recorder == nil {
		return
	}
	err := e.Recorder.RecordDay(&recorder.DayRecord{
		Day:           out.Day,
		Forecast:      string(out.Forecast),
		ActualWeather: string(out.ActualWeather),
		Ads:           out.Ads,
		Cups:          out.Cups,
		Price:         out.Price,
		Sales:         out.Sales,
		Revenue:       out.Revenue,
		Cost:          out.Cost,
		Profit:        out.Profit,
		MoneyAfter:    out.MoneyAfter,
		GameOver:      gameOver,
	})
	if err != nil {
		e.logger().Warn("day outcome not recorded", zap.Int("day", out.Day), zap.Error(err))
	}
}

func (e Engine) logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}
