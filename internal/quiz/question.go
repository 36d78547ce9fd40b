// Package quiz provides question content: generated arithmetic for Maths
// and a small static bank for the other subjects.
package quiz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/cramgames/internal/adaptive"
)

// Subject is a curriculum area.
type Subject string

const (
	Maths     Subject = "Maths"
	Biology   Subject = "Biology"
	Chemistry Subject = "Chemistry"
	Physics   Subject = "Physics"
	English   Subject = "English"
)

// AllSubjects returns every subject in menu order.
func AllSubjects() []Subject {
	return []Subject{Maths, Biology, Chemistry, Physics, English}
}

// SubjectNames returns AllSubjects as plain strings.
func SubjectNames() []string {
	subjects := AllSubjects()
	out := make([]string, len(subjects))
	for i, s := range subjects {
		out[i] = string(s)
	}
	return out
}

// ParseSubject resolves a case-insensitive subject name.
func ParseSubject(s string) (Subject, error) {
	for _, sub := range AllSubjects() {
		if strings.EqualFold(strings.TrimSpace(s), string(sub)) {
			return sub, nil
		}
	}
	return "", fmt.Errorf("unknown subject %q (want one of %s)", s, strings.Join(SubjectNames(), ", "))
}

// AnswerType describes how a typed answer is normalised before comparison.
type AnswerType string

const (
	AnswerTypeInteger AnswerType = "integer" // e.g. "623", "-15"
	AnswerTypeDecimal AnswerType = "decimal" // e.g. "3.75", "0.5"
	AnswerTypeText    AnswerType = "text"    // compared case-insensitively
)

// Question is one item shown to the player.
type Question struct {
	ID      string
	Subject Subject

	// Prompt is the question text, e.g. "What is 7 × 8?".
	Prompt string

	// Answer is the canonical correct answer. It always appears in Choices.
	Answer     string
	AnswerType AnswerType

	// Choices holds four options in display order.
	Choices []string

	Difficulty  adaptive.Difficulty
	Explanation string
}

// Check compares a player's input with the correct answer. Input may be a
// 1-based choice index or the answer text itself.
//
// Normalisation: whitespace is trimmed, text comparison ignores case,
// integers ignore leading zeros and decimals ignore trailing zeros.
func (q Question) Check(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}

	if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(q.Choices) && !q.isNumeric() {
		return strings.EqualFold(strings.TrimSpace(q.Choices[idx-1]), strings.TrimSpace(q.Answer))
	}

	got, err := normalizeAnswer(input, q.AnswerType)
	if err != nil {
		return false
	}
	want, err := normalizeAnswer(q.Answer, q.AnswerType)
	if err != nil {
		return false
	}
	return got == want
}

// CheckChoice reports whether the 0-based choice index is correct.
func (q Question) CheckChoice(idx int) bool {
	if idx < 0 || idx >= len(q.Choices) {
		return false
	}
	return q.Choices[idx] == q.Answer
}

// CorrectIndex returns the 0-based index of the answer in Choices, or -1.
func (q Question) CorrectIndex() int {
	for i, c := range q.Choices {
		if c == q.Answer {
			return i
		}
	}
	return -1
}

func (q Question) isNumeric() bool {
	return q.AnswerType == AnswerTypeInteger || q.AnswerType == AnswerTypeDecimal
}

func normalizeAnswer(answer string, answerType AnswerType) (string, error) {
	answer = strings.TrimSpace(answer)
	switch answerType {
	case AnswerTypeInteger:
		n, err := strconv.ParseInt(answer, 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid integer: %w", err)
		}
		return strconv.FormatInt(n, 10), nil

	case AnswerTypeDecimal:
		f, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			return "", fmt.Errorf("invalid decimal: %w", err)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil

	default:
		return strings.ToLower(answer), nil
	}
}

// Source produces questions at a requested difficulty.
type Source interface {
	Next(d adaptive.Difficulty) Question
}
