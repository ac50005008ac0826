package recorder

// DayRecord is the flattened row persisted for one resolved day. Outcomes
// are recorded for post-hoc analysis only; game state is never read back
// from a recorder.
type DayRecord struct {
	Day           int
	Forecast      string
	ActualWeather string
	Ads           int
	Cups          int
	Price         float64
	Sales         int
	Revenue       float64
	Cost          float64
	Profit        float64
	MoneyAfter    float64
	GameOver      bool
}

// Recorder persists day outcomes for analysis.
type Recorder interface {
	RecordDay(rec *DayRecord) error
	Close() error
}
