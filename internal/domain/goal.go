package domain

// Goal is a staff or company target tracked over a date range.
type Goal struct {
	ID          string  `json:"_id"`
	Subject     string  `json:"subject"`
	Description string  `json:"description,omitempty"`
	GoalType    string  `json:"goalType"`
	Staff       string  `json:"staff,omitempty"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Achievement float64 `json:"achievement"`
	Target      float64 `json:"target"`
}

// ProgressPct returns the goal's completion percentage clamped to [0, 100].
// A non-positive target reports 0 rather than dividing by zero.
func (g Goal) ProgressPct() float64 {
	if g.Target <= 0 {
		return 0
	}
	pct := g.Achievement / g.Target * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
