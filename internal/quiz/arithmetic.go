package quiz

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/abhisek/cramgames/internal/adaptive"
	"github.com/abhisek/cramgames/internal/random"
)

// ArithmeticSource generates Maths questions with operand ranges scaled by
// difficulty.
type ArithmeticSource struct {
	rng *rand.Rand
}

// NewArithmeticSource creates a generator. A nil rng uses the global source.
func NewArithmeticSource(rng *rand.Rand) *ArithmeticSource {
	return &ArithmeticSource{rng: rng}
}

type operation int

const (
	opAdd operation = iota
	opSub
	opMul
	opDiv
)

func (s *ArithmeticSource) Next(d adaptive.Difficulty) Question {
	var ops []operation
	switch d {
	case adaptive.Easy:
		ops = []operation{opAdd, opSub}
	case adaptive.Hard:
		ops = []operation{opMul, opDiv, opSub}
	default:
		ops = []operation{opAdd, opSub, opMul}
	}
	op, _ := random.Pick(s.rng, ops)

	a, b, answer, symbol := s.operands(op, d)
	prompt := fmt.Sprintf("What is %d %s %d?", a, symbol, b)

	return Question{
		ID:          fmt.Sprintf("maths:%d%s%d", a, symbol, b),
		Subject:     Maths,
		Prompt:      prompt,
		Answer:      strconv.Itoa(answer),
		AnswerType:  AnswerTypeInteger,
		Choices:     s.choices(answer),
		Difficulty:  d,
		Explanation: fmt.Sprintf("%d %s %d = %d", a, symbol, b, answer),
	}
}

func (s *ArithmeticSource) operands(op operation, d adaptive.Difficulty) (a, b, answer int, symbol string) {
	hi := 20
	switch d {
	case adaptive.Medium:
		hi = 100
	case adaptive.Hard:
		hi = 500
	}

	switch op {
	case opSub:
		a = random.IntBetween(s.rng, 1, hi)
		b = random.IntBetween(s.rng, 1, hi)
		if d != adaptive.Hard && b > a {
			a, b = b, a
		}
		return a, b, a - b, "-"
	case opMul:
		maxA, maxB := 12, 12
		if d == adaptive.Hard {
			maxA, maxB = 25, 15
		}
		a = random.IntBetween(s.rng, 2, maxA)
		b = random.IntBetween(s.rng, 2, maxB)
		return a, b, a * b, "×"
	case opDiv:
		b = random.IntBetween(s.rng, 2, 12)
		answer = random.IntBetween(s.rng, 2, 25)
		return answer * b, b, answer, "÷"
	default:
		a = random.IntBetween(s.rng, 1, hi)
		b = random.IntBetween(s.rng, 1, hi)
		return a, b, a + b, "+"
	}
}

// choices returns the answer and three distinct near-miss distractors in
// random order.
func (s *ArithmeticSource) choices(answer int) []string {
	seen := map[int]bool{answer: true}
	opts := []string{strconv.Itoa(answer)}
	for offset := 1; len(opts) < 4; offset++ {
		candidates := random.Shuffle(s.rng, []int{answer + offset, answer - offset, answer + offset*10, answer - offset*10})
		for _, c := range candidates {
			if len(opts) == 4 {
				break
			}
			if seen[c] {
				continue
			}
			if random.IntBetween(s.rng, 0, 1) == 0 && offset < 3 {
				continue
			}
			seen[c] = true
			opts = append(opts, strconv.Itoa(c))
		}
	}
	return random.Shuffle(s.rng, opts)
}
