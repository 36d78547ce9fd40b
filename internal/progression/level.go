package progression

// XPForLevel returns the cumulative XP needed to reach level n.
// Level 1 starts at 0; each level costs 100 more than the previous one.
func XPForLevel(n int) int {
	if n <= 1 {
		return 0
	}
	return 50 * n * (n - 1)
}

// LevelForXP returns the level reached with xp total experience.
func LevelForXP(xp int) int {
	level := 1
	for XPForLevel(level+1) <= xp {
		level++
	}
	return level
}

// LevelProgress reports how far xp is into its level: the XP earned since
// the level started and the XP the level spans.
func LevelProgress(xp int) (level, into, span int) {
	xp = max(xp, 0)
	level = LevelForXP(xp)
	start := XPForLevel(level)
	return level, xp - start, XPForLevel(level+1) - start
}

// Badge is a mastery tier earned per subject.
type Badge int

const (
	BadgeNone Badge = iota
	BadgeBronze
	BadgeSilver
	BadgeGold
)

// MinBadgeAnswers is the sample size required before any badge is awarded.
const MinBadgeAnswers = 10

func (b Badge) String() string {
	switch b {
	case BadgeBronze:
		return "bronze"
	case BadgeSilver:
		return "silver"
	case BadgeGold:
		return "gold"
	default:
		return "none"
	}
}

// Icon returns the display icon for the badge.
func (b Badge) Icon() string {
	switch b {
	case BadgeBronze:
		return "🥉"
	case BadgeSilver:
		return "🥈"
	case BadgeGold:
		return "🥇"
	default:
		return "·"
	}
}

// BadgeFor returns the mastery tier for a subject tally.
func BadgeFor(correct, total int) Badge {
	if total < MinBadgeAnswers {
		return BadgeNone
	}
	pct := correct * 100 / total
	switch {
	case pct >= 90:
		return BadgeGold
	case pct >= 75:
		return BadgeSilver
	case pct >= 60:
		return BadgeBronze
	default:
		return BadgeNone
	}
}
