package quiz

import (
	"strconv"
	"testing"

	"github.com/abhisek/cramgames/internal/adaptive"
	"github.com/abhisek/cramgames/internal/random"
)

func TestCheck_Integer(t *testing.T) {
	q := Question{Answer: "42", AnswerType: AnswerTypeInteger, Choices: []string{"40", "42", "41", "52"}}

	tests := []struct {
		input string
		want  bool
	}{
		{"42", true},
		{" 42 ", true},
		{"042", true},
		{"2", false},
		{"43", false},
		{"", false},
		{"abc", false},
	}
	for _, tc := range tests {
		if got := q.Check(tc.input); got != tc.want {
			t.Errorf("Check(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheck_Decimal(t *testing.T) {
	q := Question{Answer: "1.5", AnswerType: AnswerTypeDecimal}
	for _, in := range []string{"1.5", "1.50", " 1.500 "} {
		if !q.Check(in) {
			t.Errorf("Check(%q) = false, want true", in)
		}
	}
	if q.Check("1.6") {
		t.Error("Check(1.6) = true, want false")
	}
}

func TestCheck_TextAndIndex(t *testing.T) {
	q := Question{Answer: "Mitochondria", AnswerType: AnswerTypeText, Choices: []string{"Ribosome", "Mitochondria", "Nucleus", "Cell membrane"}}

	tests := []struct {
		input string
		want  bool
	}{
		{"mitochondria", true},
		{"MITOCHONDRIA ", true},
		{"2", true},
		{"1", false},
		{"5", false},
		{"Nucleus", false},
	}
	for _, tc := range tests {
		if got := q.Check(tc.input); got != tc.want {
			t.Errorf("Check(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
	if !q.CheckChoice(1) || q.CheckChoice(0) || q.CheckChoice(9) {
		t.Error("CheckChoice disagrees with Choices")
	}
	if q.CorrectIndex() != 1 {
		t.Errorf("CorrectIndex() = %d, want 1", q.CorrectIndex())
	}
}

func TestArithmeticSource_AnswersAreCorrect(t *testing.T) {
	src := NewArithmeticSource(random.New(42))
	for _, d := range []adaptive.Difficulty{adaptive.Easy, adaptive.Medium, adaptive.Hard} {
		for i := 0; i < 200; i++ {
			q := src.Next(d)
			if q.Subject != Maths || q.Difficulty != d {
				t.Fatalf("unexpected question metadata: %+v", q)
			}
			if len(q.Choices) != 4 {
				t.Fatalf("%s: got %d choices", q.Prompt, len(q.Choices))
			}
			seen := map[string]bool{}
			for _, c := range q.Choices {
				if seen[c] {
					t.Fatalf("%s: duplicate choice %s in %v", q.Prompt, c, q.Choices)
				}
				seen[c] = true
			}
			if q.CorrectIndex() < 0 {
				t.Fatalf("%s: answer %s missing from %v", q.Prompt, q.Answer, q.Choices)
			}
			if !q.Check(q.Answer) {
				t.Fatalf("%s: Check rejects its own answer", q.Prompt)
			}
			if d == adaptive.Easy {
				if n, _ := strconv.Atoi(q.Answer); n < 0 {
					t.Fatalf("%s: easy question has negative answer", q.Prompt)
				}
			}
		}
	}
}

func TestBankSource_DealsWithoutRepeats(t *testing.T) {
	for _, subject := range AllSubjects() {
		if subject == Maths {
			continue
		}
		src := NewBankSource(subject, random.New(1))
		first := src.Next(adaptive.Easy)
		second := src.Next(adaptive.Easy)
		if first.ID == second.ID {
			t.Errorf("%s: repeated %s before the deck ran out", subject, first.ID)
		}
		if first.Subject != subject || first.Difficulty != adaptive.Easy {
			t.Errorf("%s: got %+v", subject, first)
		}
		if len(first.Choices) != 4 || first.CorrectIndex() < 0 {
			t.Errorf("%s: bad choices %v for %s", subject, first.Choices, first.Answer)
		}
		// Deck refills once exhausted.
		third := src.Next(adaptive.Easy)
		if third.ID == "" {
			t.Errorf("%s: empty question after refill", subject)
		}
	}
}

func TestSourceFor(t *testing.T) {
	if _, ok := SourceFor(Maths, nil).(*ArithmeticSource); !ok {
		t.Error("Maths should use ArithmeticSource")
	}
	if _, ok := SourceFor(Physics, nil).(*BankSource); !ok {
		t.Error("Physics should use BankSource")
	}
}

func TestParseSubject(t *testing.T) {
	got, err := ParseSubject(" chemistry ")
	if err != nil || got != Chemistry {
		t.Errorf("ParseSubject = %q, %v", got, err)
	}
	if _, err := ParseSubject("latin"); err == nil {
		t.Error("expected error for unknown subject")
	}
}
