package stand

import "lemonade/internal/weather"

// Stats aggregates the full ledger, not just the surfaced recent window.
type Stats struct {
	DaysPlayed      int                  `json:"days_played"`
	TotalRevenue    float64              `json:"total_revenue"`
	TotalCost       float64              `json:"total_cost"`
	TotalProfit     float64              `json:"total_profit"`
	AvgProfitPerDay float64              `json:"avg_profit_per_day"`
	TotalSales      int                  `json:"total_sales"`
	CupsPrepared    int                  `json:"cups_prepared"`
	SellOutDays     int                  `json:"sell_out_days"`
	LossDays        int                  `json:"loss_days"`
	BestDay         int                  `json:"best_day"`
	BestDayProfit   float64              `json:"best_day_profit"`
	WorstDay        int                  `json:"worst_day"`
	WorstDayProfit  float64              `json:"worst_day_profit"`
	ForecastHits    int                  `json:"forecast_hits"`
	ForecastHitRate float64              `json:"forecast_hit_rate"`
	WeatherCounts   map[weather.Type]int `json:"weather_counts"`
}

// CalculateStats computes ledger statistics from resolved days.
func CalculateStats(h History) Stats {
	stats := Stats{
		WeatherCounts: make(map[weather.Type]int),
	}

	for _, day := range h {
		stats.DaysPlayed++
		stats.TotalRevenue += day.Revenue
		stats.TotalCost += day.Cost
		stats.TotalProfit += day.Profit
		stats.TotalSales += day.Sales
		stats.CupsPrepared += day.Cups
		stats.WeatherCounts[day.ActualWeather]++

		if day.Cups > 0 && day.Sales == day.Cups {
			stats.SellOutDays++
		}
		if day.Profit < 0 {
			stats.LossDays++
		}
		if day.ActualWeather == day.Forecast {
			stats.ForecastHits++
		}

		if stats.BestDay == 0 || day.Profit > stats.BestDayProfit {
			stats.BestDay = day.Day
			stats.BestDayProfit = day.Profit
		}
		if stats.WorstDay == 0 || day.Profit < stats.WorstDayProfit {
			stats.WorstDay = day.Day
			stats.WorstDayProfit = day.Profit
		}
	}

	if stats.DaysPlayed > 0 {
		stats.AvgProfitPerDay = stats.TotalProfit / float64(stats.DaysPlayed)
		stats.ForecastHitRate = float64(stats.ForecastHits) / float64(stats.DaysPlayed)
	}

	return stats
}
