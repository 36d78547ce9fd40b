package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_ThreeCorrect(t *testing.T) {
	tr := NewTracker(Options{BasePoints: 100, DifficultyMultiplier: 1})

	assert.Equal(t, 100, tr.RecordCorrect(0))
	assert.Equal(t, 150, tr.RecordCorrect(0))
	assert.Equal(t, 150, tr.RecordCorrect(0))

	assert.Equal(t, 400, tr.Score())
	assert.Equal(t, 3, tr.MaxCombo())
	assert.Equal(t, 3, tr.State().CorrectAnswers)
	assert.Equal(t, 100, tr.Accuracy())
	assert.True(t, tr.IsPerfect())
	assert.Equal(t, GradeS, tr.Grade())
	assert.Equal(t, 145, tr.XP())
}

func TestTracker_ComboMonotonicity(t *testing.T) {
	tr := NewTracker(DefaultOptions())

	for i := 1; i <= 12; i++ {
		tr.RecordCorrect(0)
		require.Equal(t, i, tr.Combo(), "combo after %d correct", i)
	}
	tr.RecordWrong()
	assert.Equal(t, 0, tr.Combo())
	assert.Equal(t, 12, tr.MaxCombo())

	tr.RecordCorrect(0)
	assert.Equal(t, 1, tr.Combo())
	assert.Equal(t, 12, tr.MaxCombo())
}

func TestTracker_MaxComboAndScoreInvariants(t *testing.T) {
	tr := NewTracker(DefaultOptions())
	pattern := []bool{true, true, false, true, true, true, true, false, false, true, true, true}

	prevScore := 0
	highest := 0
	for _, correct := range pattern {
		if correct {
			tr.RecordCorrect(10)
		} else {
			tr.RecordWrong()
		}
		highest = max(highest, tr.Combo())

		require.GreaterOrEqual(t, tr.MaxCombo(), tr.Combo())
		require.Equal(t, highest, tr.MaxCombo())
		require.GreaterOrEqual(t, tr.Score(), prevScore)
		prevScore = tr.Score()
	}
}

func TestTracker_WrongHasNoPenalty(t *testing.T) {
	tr := NewTracker(DefaultOptions())
	tr.RecordCorrect(0)
	tr.RecordWrong()
	tr.RecordWrong()

	assert.Equal(t, 100, tr.Score())
	assert.Equal(t, 2, tr.State().WrongAnswers)
	assert.Equal(t, 33, tr.Accuracy())
	assert.False(t, tr.IsPerfect())
	assert.Equal(t, GradeF, tr.Grade())
	assert.Nil(t, tr.LastEvent())
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker(DefaultOptions())
	tr.RecordCorrect(5)
	tr.RecordWrong()

	tr.Reset()
	tr.Reset()

	assert.Equal(t, State{}, tr.State())
	assert.Equal(t, 0, tr.Accuracy())
	assert.False(t, tr.IsPerfect())
	assert.Equal(t, 0, tr.XP())
}

func TestTracker_DifficultyMultiplier(t *testing.T) {
	tr := NewTracker(Options{})
	assert.Equal(t, 1.0, tr.DifficultyMultiplier())

	tr.SetDifficultyMultiplier(1.5)
	assert.Equal(t, 150, tr.RecordCorrect(0))

	tr.SetDifficultyMultiplier(-2)
	assert.Equal(t, 1.0, tr.DifficultyMultiplier())
}

func TestTracker_LastEvent(t *testing.T) {
	tr := NewTracker(DefaultOptions())
	tr.RecordCorrect(0)
	tr.RecordCorrect(0)

	ev := tr.LastEvent()
	require.NotNil(t, ev)
	assert.Equal(t, 2, ev.Combo)
	assert.Equal(t, 1.5, ev.Multiplier)
	assert.Equal(t, 150, ev.Points)
	assert.Equal(t, 1.5, tr.ComboMultiplier())
}
