package stand

import (
	"math"

	"lemonade/internal/config"
	"lemonade/internal/weather"
)

// Outcome is the immutable record of one resolved day. Money fields keep
// full float precision; rounding to cents happens at presentation time via
// Round2.
type Outcome struct {
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

// Resolve turns a plan, the forecast shown to the player and the actual
// weather draw into a financial outcome. Pure: no state, no side effects,
// fully determined by its inputs. Day and MoneyAfter are filled in when
// the outcome is applied to a state.
func Resolve(plan Plan, forecast, actual weather.Variant, bal config.Balance) Outcome {
	plan = plan.Clamped()

	// Ads are half as effective on windy days.
	adEff := 1.0
	if actual.Type == weather.TypeWindy {
		adEff = bal.WindyAdEffectiveness
	}
	adCustomers := math.Min(float64(plan.Ads)*bal.AdMultiplier*adEff, bal.AdCap)

	demand := (float64(actual.BaseCustomers) + adCustomers) * actual.Multiplier

	// Linear markdown for every dollar above the reference price. The
	// factor (1-penalty) can go negative at extreme prices; the clamp to
	// zero below is deliberate. Absurd prices zero out demand, they do
	// not produce negative customers.
	penalty := 0.0
	if plan.Price > bal.PricePenaltyThreshold {
		penalty = (plan.Price - bal.PricePenaltyThreshold) * bal.PricePenaltyRate
	}

	potential := int(math.Floor(demand * (1 - penalty)))
	if potential < 0 {
		potential = 0
	}

	sales := potential
	if sales > plan.Cups {
		sales = plan.Cups
	}

	cost := plan.Cost(bal)
	revenue := float64(sales) * plan.Price

	return Outcome{
		Forecast:      forecast.Type,
		ActualWeather: actual.Type,
		Ads:           plan.Ads,
		Cups:          plan.Cups,
		Price:         plan.Price,
		Sales:         sales,
		Revenue:       revenue,
		Cost:          cost,
		Profit:        revenue - cost,
	}
}

// Round2 rounds a currency amount to cents for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
