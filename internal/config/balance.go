package config

// Balance holds the economy tuning for a run. Every knob the planner and
// the resolver read lives here so nothing in the engine is a magic literal.
type Balance struct {
	// Starting conditions
	StartingMoney float64 `yaml:"starting_money" json:"starting_money"`

	// Daily costs
	DailyOverhead float64 `yaml:"daily_overhead" json:"daily_overhead"`
	CupCost       float64 `yaml:"cup_cost" json:"cup_cost"`
	AdCost        float64 `yaml:"ad_cost" json:"ad_cost"`

	// MinRequiredMoney is the solvency floor: dropping below it after a day
	// ends the run. Default() keeps it equal to CupCost (enough for one
	// cup), presets may diverge.
	MinRequiredMoney float64 `yaml:"min_required_money" json:"min_required_money"`

	// Weather
	ForecastAccuracy float64 `yaml:"forecast_accuracy" json:"forecast_accuracy"`

	// Advertising
	AdMultiplier         float64 `yaml:"ad_multiplier" json:"ad_multiplier"`
	AdCap                float64 `yaml:"ad_cap" json:"ad_cap"`
	WindyAdEffectiveness float64 `yaml:"windy_ad_effectiveness" json:"windy_ad_effectiveness"`

	// Pricing
	PricePenaltyThreshold float64 `yaml:"price_penalty_threshold" json:"price_penalty_threshold"`
	PricePenaltyRate      float64 `yaml:"price_penalty_rate" json:"price_penalty_rate"`

	// Presentation
	HistoryWindow int `yaml:"history_window" json:"history_window"`
}

// Default returns the canonical balance.
func Default() Balance {
	return Balance{
		StartingMoney:         5.00,
		DailyOverhead:         0.25,
		CupCost:               0.05,
		AdCost:                0.50,
		MinRequiredMoney:      0.05,
		ForecastAccuracy:      0.8,
		AdMultiplier:          3,
		AdCap:                 30,
		WindyAdEffectiveness:  0.5,
		PricePenaltyThreshold: 1.00,
		PricePenaltyRate:      0.2,
		HistoryWindow:         5,
	}
}

// Casual returns easier balance for casual play.
func Casual() Balance {
	cfg := Default()
	cfg.StartingMoney = 10.00
	cfg.DailyOverhead = 0.10
	cfg.AdCost = 0.35
	cfg.ForecastAccuracy = 0.9
	return cfg
}

// Hard returns harder balance for experienced players.
func Hard() Balance {
	cfg := Default()
	cfg.StartingMoney = 3.00
	cfg.DailyOverhead = 0.40
	cfg.ForecastAccuracy = 0.65
	cfg.PricePenaltyRate = 0.25
	return cfg
}
