package config

import (
	"os"
	"strconv"
)

// FromEnv loads balance configuration from environment variables.
// Falls back to defaults if variables are not set.
func FromEnv() Balance {
	// Support preset modes first so individual overrides stack on top.
	cfg := Default()
	switch os.Getenv("DIFFICULTY") {
	case "casual":
		cfg = Casual()
	case "hard":
		cfg = Hard()
	}

	if val, ok := getEnvFloat("STARTING_MONEY"); ok && val >= 0 {
		cfg.StartingMoney = val
	}
	if val, ok := getEnvFloat("DAILY_OVERHEAD"); ok && val >= 0 {
		cfg.DailyOverhead = val
	}
	if val, ok := getEnvFloat("CUP_COST"); ok && val >= 0 {
		cfg.CupCost = val
		cfg.MinRequiredMoney = val
	}
	if val, ok := getEnvFloat("AD_COST"); ok && val >= 0 {
		cfg.AdCost = val
	}
	if val, ok := getEnvFloat("MIN_REQUIRED_MONEY"); ok && val >= 0 {
		cfg.MinRequiredMoney = val
	}
	if val, ok := getEnvFloat("FORECAST_ACCURACY"); ok && val >= 0 && val <= 1 {
		cfg.ForecastAccuracy = val
	}
	if val, ok := getEnvFloat("AD_MULTIPLIER"); ok && val >= 0 {
		cfg.AdMultiplier = val
	}
	if val, ok := getEnvFloat("AD_CAP"); ok && val >= 0 {
		cfg.AdCap = val
	}
	if val, ok := getEnvFloat("WINDY_AD_EFFECTIVENESS"); ok && val >= 0 {
		cfg.WindyAdEffectiveness = val
	}
	if val, ok := getEnvFloat("PRICE_PENALTY_THRESHOLD"); ok && val >= 0 {
		cfg.PricePenaltyThreshold = val
	}
	if val, ok := getEnvFloat("PRICE_PENALTY_RATE"); ok && val >= 0 {
		cfg.PricePenaltyRate = val
	}
	if val := getEnvInt("HISTORY_WINDOW"); val > 0 {
		cfg.HistoryWindow = val
	}

	return cfg
}

func getEnvFloat(key string) (float64, bool) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false
	}
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
