package game

import (
	"fmt"
	"strings"
)

// Mode selects the rules of a game.
type Mode string

const (
	// QuickFire is a fixed countdown with no speed bonus.
	QuickFire Mode = "quick_fire"

	// SpeedRound starts with half the clock, rewards fast answers and moves
	// the clock with every answer.
	SpeedRound Mode = "speed_round"
)

// Clock adjustments applied per answer in SpeedRound.
const (
	SpeedRoundCorrectSeconds = 2
	SpeedRoundWrongSeconds   = -3
)

// AllModes returns every mode in menu order.
func AllModes() []Mode { return []Mode{QuickFire, SpeedRound} }

// DisplayName returns a human-readable label for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case QuickFire:
		return "Quick Fire"
	case SpeedRound:
		return "Speed Round"
	default:
		return string(m)
	}
}

// Description is the one-line rules summary shown in menus.
func (m Mode) Description() string {
	switch m {
	case QuickFire:
		return "Answer as many as you can before the clock runs out"
	case SpeedRound:
		return "Fast answers score a bonus; right +2s, wrong -3s"
	default:
		return ""
	}
}

// Seconds returns the starting clock for a game of base seconds.
func (m Mode) Seconds(base int) int {
	if m == SpeedRound {
		return max(base/2, 10)
	}
	return base
}

// TimeBonus returns the bonus points for answering in responseMs.
// Only SpeedRound awards one: up to 50 points, falling to 0 at five seconds.
func (m Mode) TimeBonus(responseMs int) int {
	if m != SpeedRound {
		return 0
	}
	return max(0, (5000-max(responseMs, 0))/100)
}

// ParseMode resolves a mode name; "speed" and "quick" are accepted.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quick_fire", "quick-fire", "quick":
		return QuickFire, nil
	case "speed_round", "speed-round", "speed":
		return SpeedRound, nil
	default:
		return "", fmt.Errorf("unknown game mode %q (want quick_fire or speed_round)", s)
	}
}
