package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"lemonade/internal/config"
	"lemonade/internal/recorder"
	"lemonade/internal/stand"
	"lemonade/internal/weather"
)

// simulate plays a fixed plan against the engine for a number of days and
// prints the resulting ledger. Useful for balance tuning: run a few thousand
// days at different prices and compare the stats blocks.
func main() {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	days := fs.Int("days", 30, "maximum number of days to play")
	seed := fs.Int64("seed", 0, "rng seed (0 seeds from the clock)")
	ads := fs.Int("ads", 2, "ad spots purchased each day")
	cups := fs.Int("cups", 30, "cups prepared each day")
	price := fs.Float64("price", 1.00, "price per cup")
	difficulty := fs.String("difficulty", "default", "balance preset: default, casual, hard")
	dbPath := fs.String("sqlite", "", "record day outcomes to this sqlite file")
	quiet := fs.Bool("quiet", false, "suppress the per-day log, print only the summary")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	bal, err := balanceFor(*difficulty)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	rec, cleanup, err := recorderFor(*dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open recorder:", err)
		os.Exit(1)
	}
	defer cleanup()

	engine := stand.Engine{
		States:   stand.NewMemoryStateRepo(),
		Rand:     weather.NewSeededRand(*seed),
		Balance:  bal,
		Recorder: rec,
		Log:      zap.NewNop(),
	}

	ctx := context.Background()
	if _, err := engine.NewGame(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "new game:", err)
		os.Exit(1)
	}

	plan := stand.NewPlan(*ads, *cups, *price)
	played := 0
	for played < *days {
		out, err := engine.PlayDay(ctx, plan)
		if errors.Is(err, stand.ErrGameOver) {
			fmt.Println("game over: the stand ran out of money")
			break
		}
		var insufficient stand.InsufficientFundsError
		if errors.As(err, &insufficient) {
			fmt.Printf("cannot afford the plan: %v\n", insufficient)
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "play day:", err)
			os.Exit(1)
		}
		played++

		if !*quiet {
			fmt.Printf("day %3d  forecast=%-6s actual=%-6s sold %3d/%3d  profit %+7.2f  money %8.2f\n",
				out.Day, out.Forecast, out.ActualWeather, out.Sales, out.Cups,
				stand.Round2(out.Profit), stand.Round2(out.MoneyAfter))
		}
	}

	st, err := engine.State(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read state:", err)
		os.Exit(1)
	}
	stats, err := engine.Stats(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read stats:", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("seed            %d\n", *seed)
	fmt.Printf("days played     %d\n", stats.DaysPlayed)
	fmt.Printf("final money     %.2f\n", stand.Round2(st.Money))
	fmt.Printf("total profit    %.2f\n", stand.Round2(stats.TotalProfit))
	fmt.Printf("avg profit/day  %.2f\n", stand.Round2(stats.AvgProfitPerDay))
	fmt.Printf("sell-out days   %d\n", stats.SellOutDays)
	fmt.Printf("loss days       %d\n", stats.LossDays)
	fmt.Printf("forecast hits   %d (%.0f%%)\n", stats.ForecastHits, stats.ForecastHitRate*100)
	if stats.DaysPlayed > 0 {
		fmt.Printf("best day        %d (%+.2f)\n", stats.BestDay, stand.Round2(stats.BestDayProfit))
		fmt.Printf("worst day       %d (%+.2f)\n", stats.WorstDay, stand.Round2(stats.WorstDayProfit))
	}
}

func balanceFor(name string) (config.Balance, error) {
	switch name {
	case "default":
		return config.Default(), nil
	case "casual":
		return config.Casual(), nil
	case "hard":
		return config.Hard(), nil
	default:
		return config.Balance{}, fmt.Errorf("unknown difficulty %q (want default, casual or hard)", name)
	}
}

func recorderFor(dbPath string) (recorder.Recorder, func(), error) {
	if dbPath == "" {
		return recorder.NewNoopRecorder(), func() {}, nil
	}
	rec, err := recorder.NewSQLiteRecorder(dbPath, zap.NewNop())
	if err != nil {
		return nil, nil, err
	}
	return rec, func() { _ = rec.Close() }, nil
}
