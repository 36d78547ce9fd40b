package scoring

// DefaultBasePoints is the score for a correct answer before multipliers.
const DefaultBasePoints = 100

// Options configures a Tracker.
type Options struct {
	BasePoints           int
	DifficultyMultiplier float64
}

// DefaultOptions returns 100 base points at a neutral multiplier.
func DefaultOptions() Options {
	return Options{
		BasePoints:           DefaultBasePoints,
		DifficultyMultiplier: 1,
	}
}

// State is the raw per-game counter set. Derived values are never stored.
type State struct {
	Score          int `json:"score"`
	Combo          int `json:"combo"`
	MaxCombo       int `json:"maxCombo"`
	CorrectAnswers int `json:"correctAnswers"`
	WrongAnswers   int `json:"wrongAnswers"`
}

// ComboEvent describes the most recent correct answer, for presentation
// layers that react to combos (sound, flashes) without the tracker calling out.
type ComboEvent struct {
	Combo      int
	Multiplier float64
	Points     int
}

// Tracker keeps the score of a single game session.
type Tracker struct {
	opts  Options
	state State
	last  *ComboEvent
}

// NewTracker creates a tracker. Zero-valued options fall back to defaults.
func NewTracker(opts Options) *Tracker {
	if opts.BasePoints <= 0 {
		opts.BasePoints = DefaultBasePoints
	}
	if opts.DifficultyMultiplier <= 0 {
		opts.DifficultyMultiplier = 1
	}
	return &Tracker{opts: opts}
}

// RecordCorrect extends the combo and adds the points for this answer.
// It returns the points added.
func (t *Tracker) RecordCorrect(timeBonus int) int {
	t.state.Combo++
	t.state.MaxCombo = max(t.state.MaxCombo, t.state.Combo)
	t.state.CorrectAnswers++

	pts := Points(t.opts.BasePoints, t.state.Combo, timeBonus, t.opts.DifficultyMultiplier)
	t.state.Score += pts
	t.last = &ComboEvent{
		Combo:      t.state.Combo,
		Multiplier: ComboMultiplier(t.state.Combo),
		Points:     pts,
	}
	return pts
}

// RecordWrong breaks the combo. There is no score penalty.
func (t *Tracker) RecordWrong() {
	t.state.Combo = 0
	t.state.WrongAnswers++
	t.last = nil
}

// Reset zeroes every counter. Safe to call repeatedly.
func (t *Tracker) Reset() {
	t.state = State{}
	t.last = nil
}

// SetDifficultyMultiplier changes the multiplier used by subsequent answers.
func (t *Tracker) SetDifficultyMultiplier(m float64) {
	if m <= 0 {
		m = 1
	}
	t.opts.DifficultyMultiplier = m
}

// DifficultyMultiplier returns the multiplier currently applied.
func (t *Tracker) DifficultyMultiplier() float64 { return t.opts.DifficultyMultiplier }

// State returns a copy of the counters.
func (t *Tracker) State() State { return t.state }

// LastEvent returns the most recent correct-answer event, or nil after a
// wrong answer or reset.
func (t *Tracker) LastEvent() *ComboEvent { return t.last }

func (t *Tracker) Score() int    { return t.state.Score }
func (t *Tracker) Combo() int    { return t.state.Combo }
func (t *Tracker) MaxCombo() int { return t.state.MaxCombo }

// Total is the number of answers recorded.
func (t *Tracker) Total() int { return t.state.CorrectAnswers + t.state.WrongAnswers }

// Accuracy returns the percentage of correct answers (0 before any answer).
func (t *Tracker) Accuracy() int {
	return Accuracy(t.state.CorrectAnswers, t.Total())
}

// IsPerfect reports a game with at least one answer and none wrong.
func (t *Tracker) IsPerfect() bool {
	return t.state.WrongAnswers == 0 && t.state.CorrectAnswers > 0
}

// XP returns the experience earned by the game so far.
func (t *Tracker) XP() int {
	return XP(t.state.CorrectAnswers, t.Total(), t.state.MaxCombo, t.opts.DifficultyMultiplier, t.IsPerfect())
}

// Grade returns the letter grade for the current accuracy.
func (t *Tracker) Grade() Grade { return GradeFor(t.Accuracy()) }

// ComboMultiplier returns the multiplier the current combo earns.
func (t *Tracker) ComboMultiplier() float64 { return ComboMultiplier(t.state.Combo) }
