package adaptive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cramgames/internal/clock"
)

func newTestTracker() (*Tracker, *clock.Manual) {
	c := clock.NewManual(time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC))
	return NewTracker(c), c
}

func TestRecordAnswer_FiveWrongEasesDifficulty(t *testing.T) {
	tr, _ := newTestTracker()

	for i := 0; i < 4; i++ {
		tr.RecordAnswer(false, 1000, "")
		require.Equal(t, 0.0, tr.DifficultyModifier(), "no change before five answers")
	}
	tr.RecordAnswer(false, 1000, "")

	assert.Equal(t, -0.3, tr.DifficultyModifier())
	assert.Equal(t, 0.0, tr.Accuracy())
	assert.Equal(t, 0.25, tr.ConfidenceScore())
}

func TestRecordAnswer_FastAccurateGetsHarder(t *testing.T) {
	tr, _ := newTestTracker()

	for i := 0; i < 9; i++ {
		tr.RecordAnswer(true, 1500, "")
	}
	require.Equal(t, 0.0, tr.DifficultyModifier(), "needs ten answers")

	tr.RecordAnswer(true, 1500, "")
	assert.Equal(t, 0.2, tr.DifficultyModifier())

	tr.RecordAnswer(true, 1500, "")
	tr.RecordAnswer(true, 1500, "")
	assert.Equal(t, 0.6, tr.DifficultyModifier())
}

func TestRecordAnswer_SlowAccurateStaysPut(t *testing.T) {
	tr, _ := newTestTracker()
	for i := 0; i < 15; i++ {
		tr.RecordAnswer(true, 3000, "")
	}
	assert.Equal(t, 0.0, tr.DifficultyModifier())
	assert.Equal(t, Medium, tr.OverallDifficulty())
}

func TestRecordAnswer_FrustrationZone(t *testing.T) {
	tr, _ := newTestTracker()
	pattern := []bool{true, true, true, true, false, false, false}
	for _, c := range pattern {
		tr.RecordAnswer(c, 1000, "")
	}
	require.Equal(t, 0.0, tr.DifficultyModifier())

	// 4/8 = 0.5 lands in the [0.5, 0.6) band with eight answers.
	tr.RecordAnswer(false, 1000, "")
	assert.Equal(t, -0.1, tr.DifficultyModifier())
}

func TestRecordAnswer_WindowBoundAndFIFO(t *testing.T) {
	tr, c := newTestTracker()
	start := c.Now()

	for i := 0; i < 25; i++ {
		tr.RecordAnswer(i%2 == 0, i, "")
		c.Advance(time.Second)
		require.LessOrEqual(t, tr.WindowLen(), WindowSize)
	}

	snap := tr.Snapshot()
	require.Len(t, snap.RecentPerformance, WindowSize)
	assert.Equal(t, 5, snap.RecentPerformance[0].ResponseTimeMs, "oldest five evicted")
	assert.Equal(t, 24, snap.RecentPerformance[WindowSize-1].ResponseTimeMs)
	assert.Equal(t, start.Add(5*time.Second), snap.RecentPerformance[0].Timestamp)
	assert.Equal(t, 1.0, tr.ConfidenceScore())
}

func TestRecordAnswer_ModifiersStayClamped(t *testing.T) {
	tr, _ := newTestTracker()

	for i := 0; i < 200; i++ {
		tr.RecordAnswer(false, 5000, "Chemistry")
		require.GreaterOrEqual(t, tr.DifficultyModifier(), MinModifier)
		require.GreaterOrEqual(t, tr.SubjectModifier("Chemistry"), MinModifier)
	}
	assert.Equal(t, MinModifier, tr.DifficultyModifier())
	assert.Equal(t, MinModifier, tr.SubjectModifier("Chemistry"))
	assert.Equal(t, Easy, tr.DifficultyForSubject("Chemistry"))

	for i := 0; i < 400; i++ {
		tr.RecordAnswer(true, 800, "Chemistry")
		require.LessOrEqual(t, tr.DifficultyModifier(), MaxModifier)
		require.LessOrEqual(t, tr.SubjectModifier("Chemistry"), MaxModifier)
	}
	assert.Equal(t, MaxModifier, tr.DifficultyModifier())
	assert.Equal(t, MaxModifier, tr.SubjectModifier("Chemistry"))
	assert.Equal(t, Hard, tr.DifficultyForSubject("Chemistry"))
}

func TestRecordAnswer_SubjectModifiers(t *testing.T) {
	tr, _ := newTestTracker()

	for i := 0; i < 3; i++ {
		tr.RecordAnswer(false, 1000, "Biology")
	}
	assert.Equal(t, -0.6, tr.SubjectModifier("Biology"))
	assert.Equal(t, Medium, tr.DifficultyForSubject("Biology"))

	tr.RecordAnswer(false, 1000, "Biology")
	tr.RecordAnswer(false, 1000, "Biology")
	assert.Equal(t, -1.0, tr.SubjectModifier("Biology"))
	assert.Equal(t, -0.3, tr.DifficultyModifier())
	assert.Equal(t, Easy, tr.DifficultyForSubject("Biology"))
	assert.Equal(t, Medium, tr.OverallDifficulty())

	// Unknown subjects fall back to the global modifier.
	assert.Equal(t, 0.0, tr.SubjectModifier("Latin"))
	assert.Equal(t, Medium, tr.DifficultyForSubject("Latin"))
}

func TestRecordAnswer_SubjectRuleUsesLastTen(t *testing.T) {
	tr, _ := newTestTracker()
	for i := 0; i < 10; i++ {
		tr.RecordAnswer(false, 1000, "")
	}
	for i := 0; i < 9; i++ {
		tr.RecordAnswer(true, 1000, "")
	}
	// Window is at 50% but the newest ten are all correct.
	tr.RecordAnswer(true, 1000, "Physics")
	assert.Equal(t, 0.1, tr.SubjectModifier("Physics"))
}

func TestRecordAnswer_NegativeResponseTime(t *testing.T) {
	tr, _ := newTestTracker()
	tr.RecordAnswer(true, -500, "")
	assert.Equal(t, 0, tr.Snapshot().RecentPerformance[0].ResponseTimeMs)
}

func TestShouldShowEasierQuestion(t *testing.T) {
	tr, _ := newTestTracker()
	for i := 0; i < 4; i++ {
		tr.RecordAnswer(false, 1000, "")
	}
	assert.False(t, tr.ShouldShowEasierQuestion(), "fewer than five answers")

	tr.RecordAnswer(true, 1000, "")
	assert.True(t, tr.ShouldShowEasierQuestion(), "1/5 correct")

	tr.RecordAnswer(true, 1000, "")
	assert.False(t, tr.ShouldShowEasierQuestion(), "2/5 correct is not below 0.4")
}

func TestDifficultyBands(t *testing.T) {
	tests := []struct {
		global, subject float64
		want            Difficulty
	}{
		{0, 0, Medium},
		{-1, 0, Easy},
		{-0.5, -0.5, Easy},
		{-0.99, 0, Medium},
		{1, 0, Hard},
		{0.5, 0.5, Hard},
		{0.9, 0, Medium},
		{2, -2, Medium},
	}
	for _, tt := range tests {
		tr, _ := newTestTracker()
		tr.Restore(State{DifficultyModifier: tt.global, SubjectModifiers: map[string]float64{"Maths": tt.subject}})
		if got := tr.DifficultyForSubject("Maths"); got != tt.want {
			t.Errorf("global=%v subject=%v: got %s, want %s", tt.global, tt.subject, got, tt.want)
		}
	}
}

func TestSnapshotRestore(t *testing.T) {
	tr, _ := newTestTracker()
	for i := 0; i < 6; i++ {
		tr.RecordAnswer(false, 1200, "English")
	}

	snap := tr.Snapshot()
	other, _ := newTestTracker()
	other.Restore(snap)

	assert.Equal(t, tr.DifficultyModifier(), other.DifficultyModifier())
	assert.Equal(t, tr.SubjectModifier("English"), other.SubjectModifier("English"))
	assert.Equal(t, tr.WindowLen(), other.WindowLen())
	assert.Equal(t, tr.ConfidenceScore(), other.ConfidenceScore())

	// Snapshot is a copy.
	snap.SubjectModifiers["English"] = 2
	assert.NotEqual(t, 2.0, tr.SubjectModifier("English"))
}

func TestRestore_ReappliesBounds(t *testing.T) {
	tr, _ := newTestTracker()
	entries := make([]Entry, 30)
	tr.Restore(State{
		RecentPerformance:  entries,
		DifficultyModifier: 9,
		SubjectModifiers:   map[string]float64{"Maths": -7},
	})
	assert.Equal(t, WindowSize, tr.WindowLen())
	assert.Equal(t, MaxModifier, tr.DifficultyModifier())
	assert.Equal(t, MinModifier, tr.SubjectModifier("Maths"))
	assert.Equal(t, 1.0, tr.ConfidenceScore())
}

func TestReset(t *testing.T) {
	tr, _ := newTestTracker()
	for i := 0; i < 8; i++ {
		tr.RecordAnswer(false, 1000, "Maths")
	}
	tr.Reset()

	assert.Equal(t, 0, tr.WindowLen())
	assert.Equal(t, 0.0, tr.DifficultyModifier())
	assert.Equal(t, 0.0, tr.SubjectModifier("Maths"))
	assert.Equal(t, 0.0, tr.ConfidenceScore())
	assert.False(t, tr.ShouldShowEasierQuestion())
}
