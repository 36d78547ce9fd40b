package missions

import "time"

// MissionType identifies what kind of activity advances a mission.
type MissionType string

const (
	AnswerCorrect  MissionType = "answer_correct"
	PlayGames      MissionType = "play_games"
	ReachCombo     MissionType = "reach_combo"
	PerfectGame    MissionType = "perfect_game"
	SubjectCorrect MissionType = "subject_correct"
	ScorePoints    MissionType = "score_points"
	PlayMode       MissionType = "play_mode"
)

// AllMissionTypes returns every mission type in display order.
func AllMissionTypes() []MissionType {
	return []MissionType{AnswerCorrect, PlayGames, ReachCombo, PerfectGame, SubjectCorrect, ScorePoints, PlayMode}
}

// DisplayName returns a human-readable label for the mission type.
func (t MissionType) DisplayName() string {
	switch t {
	case AnswerCorrect:
		return "Correct Answers"
	case PlayGames:
		return "Games Played"
	case ReachCombo:
		return "Combo"
	case PerfectGame:
		return "Perfect Game"
	case SubjectCorrect:
		return "Subject Focus"
	case ScorePoints:
		return "Points"
	case PlayMode:
		return "Game Mode"
	default:
		return string(t)
	}
}

// Mission is the single objective for one calendar day.
type Mission struct {
	ID          string      `json:"id"`
	Type        MissionType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Target      int         `json:"target"`
	Progress    int         `json:"progress"`
	XPReward    int         `json:"xpReward"`
	Completed   bool        `json:"completed"`
	ClaimedAt   *time.Time  `json:"claimedAt,omitempty"`
	Subject     string      `json:"subject,omitempty"`
	GameMode    string      `json:"gameMode,omitempty"`

	// Date is the local calendar day (clock.DateLayout) the mission belongs to.
	Date string `json:"date"`
}

// Claimed reports whether the reward has been collected.
func (m Mission) Claimed() bool { return m.ClaimedAt != nil }

// Claimable reports whether ClaimReward would pay out.
func (m Mission) Claimable() bool { return m.Completed && m.ClaimedAt == nil }

// Fraction returns progress as a value in [0, 1].
func (m Mission) Fraction() float64 {
	if m.Target <= 0 {
		return 0
	}
	return float64(m.Progress) / float64(m.Target)
}

// Match narrows a progress update to a subject and game mode.
// Empty fields match only missions that do not name that field.
type Match struct {
	Subject  string
	GameMode string
}

func (m Mission) matches(typ MissionType, match Match) bool {
	if m.Type != typ {
		return false
	}
	if m.Subject != "" && m.Subject != match.Subject {
		return false
	}
	if m.GameMode != "" && m.GameMode != match.GameMode {
		return false
	}
	return true
}

// Stats are lifetime mission totals.
type Stats struct {
	MissionsCompleted    int    `json:"missionsCompleted"`
	TotalBonusXP         int    `json:"totalBonusXP"`
	CurrentMissionStreak int    `json:"currentMissionStreak"`
	LastClaimDate        string `json:"lastClaimDate,omitempty"`
}

// Update describes the effect of a progress update.
type Update struct {
	Mission Mission

	// Changed is false when the update did not apply.
	Changed bool

	// JustCompleted is true when this update reached the target.
	JustCompleted bool
}
