package stand

import (
	"lemonade/internal/config"
	"lemonade/internal/weather"
)

// State owns a single run: money, day counter, the forecast for the day
// about to be played, the ledger and the game-over flag. Only Apply
// mutates it; the resolver stays pure.
//
// Invariants: len(History) == Day-1, and GameOver is monotonic; once set
// no further day resolves.
type State struct {
	Money    float64         `json:"money"`
	Day      int             `json:"day"`
	Forecast weather.Variant `json:"forecast"`
	History  History         `json:"history"`
	GameOver bool            `json:"game_over"`

	// NextPlan holds the planner-facing input defaults, reset in lockstep
	// with each day transition.
	NextPlan Plan `json:"next_plan"`
}

// NewState starts a fresh run on day 1 with the given opening forecast.
func NewState(bal config.Balance, forecast weather.Variant) *State {
	return &State{
		Money:    bal.StartingMoney,
		Day:      1,
		Forecast: forecast,
		History:  History{},
		NextPlan: DefaultPlan(),
	}
}

// CanPlay reports whether another day may be resolved: the run is still
// active and there is enough money to buy at least one cup. Mirrors the
// planner check so a too-poor player is blocked before even attempting.
func (s *State) CanPlay(bal config.Balance) bool {
	return !s.GameOver && s.Money >= bal.MinRequiredMoney
}

// Apply commits a resolved outcome: credits the profit (which may be
// negative), stamps and appends the outcome, advances the day, installs
// the next forecast, resets the plan defaults and evaluates game over.
// Returns the stamped outcome.
func (s *State) Apply(out Outcome, next weather.Variant, bal config.Balance) Outcome {
	s.Money += out.Profit
	out.Day = s.Day
	out.MoneyAfter = s.Money
	s.History.Append(out)
	s.Day++
	s.Forecast = next
	s.NextPlan = DefaultPlan()
	if s.Money < bal.MinRequiredMoney {
		s.GameOver = true
	}
	return out
}

// Clone returns a deep copy, so repository readers never alias the ledger.
func (s *State) Clone() *State {
	cp := *s
	cp.History = make(History, len(s.History))
	copy(cp.History, s.History)
	return &cp
}
