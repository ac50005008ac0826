package stand

import "lemonade/internal/config"

// DefaultCupPrice is the plan-input price reset between days.
const DefaultCupPrice = 1.00

// Plan is the player's committed purchases for one day: advertising signs,
// cups prepared and the price per cup. Built fresh each day, never stored.
type Plan struct {
	Ads   int     `json:"ads"`
	Cups  int     `json:"cups"`
	Price float64 `json:"price"`
}

// NewPlan builds a plan from raw inputs, clamping at the acceptance
// boundary. Negative ads and cups coerce to zero, price to at least zero
// with no upper bound.
func NewPlan(ads, cups int, price float64) Plan {
	return Plan{Ads: ads, Cups: cups, Price: price}.Clamped()
}

// DefaultPlan is the between-days reset: no ads, no cups, price $1.00.
func DefaultPlan() Plan {
	return Plan{Ads: 0, Cups: 0, Price: DefaultCupPrice}
}

// Clamped returns the plan with all fields coerced into range. Idempotent;
// the engine applies it again even when the caller clamped already.
func (p Plan) Clamped() Plan {
	if p.Ads < 0 {
		p.Ads = 0
	}
	if p.Cups < 0 {
		p.Cups = 0
	}
	if p.Price < 0 {
		p.Price = 0
	}
	return p
}

// Cost is the planned daily spend: overhead plus ads plus cups.
func (p Plan) Cost(bal config.Balance) float64 {
	p = p.Clamped()
	return bal.DailyOverhead + float64(p.Ads)*bal.AdCost + float64(p.Cups)*bal.CupCost
}

// Validate checks the plan against available money and returns its cost.
// Fails with InsufficientFundsError when the stand cannot afford it; it
// never mutates anything, so calling it twice gives the same answer.
func (p Plan) Validate(bal config.Balance, money float64) (float64, error) {
	cost := p.Cost(bal)
	if cost > money {
		return 0, InsufficientFundsError{Cost: cost, Money: money}
	}
	return cost, nil
}
