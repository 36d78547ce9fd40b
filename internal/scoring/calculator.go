package scoring

import "math"

// Grade is the letter band awarded for a game's accuracy.
type Grade string

const (
	GradeS     Grade = "S"
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// gradeBands are evaluated top-down; lower bounds are inclusive.
var gradeBands = []struct {
	min   int
	grade Grade
}{
	{95, GradeS},
	{90, GradeAPlus},
	{80, GradeA},
	{70, GradeB},
	{60, GradeC},
	{50, GradeD},
}

// PerfectBonusXP is added to the XP of a game with no wrong answers.
const PerfectBonusXP = 50

// ComboMultiplier maps a combo count to its score multiplier.
func ComboMultiplier(combo int) float64 {
	switch {
	case combo < 2:
		return 1
	case combo < 5:
		return 1.5
	case combo < 10:
		return 2
	case combo < 15:
		return 2.5
	case combo < 20:
		return 3
	default:
		return 4
	}
}

// Points returns the points for one correct answer.
func Points(base, combo, timeBonus int, difficultyMult float64) int {
	base = nonNeg(base)
	timeBonus = nonNeg(timeBonus)
	raw := float64(base+timeBonus) * ComboMultiplier(combo) * nonNegF(difficultyMult)
	return int(math.Round(raw))
}

// XP returns the experience awarded for a finished game.
func XP(correct, total, maxCombo int, difficultyMult float64, perfect bool) int {
	correct = nonNeg(correct)
	total = nonNeg(total)
	maxCombo = nonNeg(maxCombo)

	accuracyXP := int(math.Round(float64(correct) / float64(max(total, 1)) * 50))
	comboXP := min(maxCombo*5, 100)

	raw := correct*10 + accuracyXP + comboXP
	if perfect {
		raw += PerfectBonusXP
	}
	return int(math.Round(float64(raw) * nonNegF(difficultyMult)))
}

// Accuracy returns correct/total as a whole percentage in [0, 100].
// Zero answers yield 0.
func Accuracy(correct, total int) int {
	correct = nonNeg(correct)
	total = nonNeg(total)
	if total == 0 {
		return 0
	}
	pct := int(math.Round(float64(correct) / float64(total) * 100))
	return min(max(pct, 0), 100)
}

// GradeFor returns the grade band for an accuracy percentage.
func GradeFor(accuracy int) Grade {
	for _, b := range gradeBands {
		if accuracy >= b.min {
			return b.grade
		}
	}
	return GradeF
}

// DifficultyMultiplier converts a difficulty band ("easy", "medium", "hard")
// into the score multiplier applied by the tracker. Unknown bands score as medium.
func DifficultyMultiplier(band string) float64 {
	switch band {
	case "easy":
		return 0.8
	case "hard":
		return 1.5
	default:
		return 1
	}
}

func nonNeg(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func nonNegF(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
