package quiz

import (
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/abhisek/cramgames/internal/adaptive"
	"github.com/abhisek/cramgames/internal/random"
)

// BankItem is a hand-written multiple choice question.
type BankItem struct {
	ID          string
	Subject     Subject
	Difficulty  adaptive.Difficulty
	Prompt      string
	Answer      string
	Distractors [3]string
	Explanation string
}

func (it BankItem) question(rng *rand.Rand) Question {
	choices := append([]string{it.Answer}, it.Distractors[:]...)
	return Question{
		ID:          it.ID,
		Subject:     it.Subject,
		Prompt:      it.Prompt,
		Answer:      it.Answer,
		AnswerType:  AnswerTypeText,
		Choices:     random.Shuffle(rng, choices),
		Difficulty:  it.Difficulty,
		Explanation: it.Explanation,
	}
}

// BankSource deals questions for one subject from the static bank. Items at
// the requested difficulty are preferred; each pool is dealt as a shuffled
// deck so questions do not repeat until it is exhausted.
type BankSource struct {
	subject Subject
	rng     *rand.Rand
	decks   map[adaptive.Difficulty][]BankItem
}

// NewBankSource creates a source over Bank for subject.
func NewBankSource(subject Subject, rng *rand.Rand) *BankSource {
	return &BankSource{subject: subject, rng: rng, decks: make(map[adaptive.Difficulty][]BankItem)}
}

func (s *BankSource) Next(d adaptive.Difficulty) Question {
	if len(s.decks[d]) == 0 {
		pool := lo.Filter(Bank, func(it BankItem, _ int) bool {
			return it.Subject == s.subject && it.Difficulty == d
		})
		if len(pool) == 0 {
			pool = lo.Filter(Bank, func(it BankItem, _ int) bool { return it.Subject == s.subject })
		}
		s.decks[d] = random.Shuffle(s.rng, pool)
	}
	deck := s.decks[d]
	if len(deck) == 0 {
		return Question{Subject: s.subject, Prompt: "No questions available", Difficulty: d}
	}
	it := deck[0]
	s.decks[d] = deck[1:]
	return it.question(s.rng)
}

// SourceFor returns the question source for subject.
func SourceFor(subject Subject, rng *rand.Rand) Source {
	if subject == Maths {
		return NewArithmeticSource(rng)
	}
	return NewBankSource(subject, rng)
}

// Bank is the built-in question bank.
var Bank = []BankItem{
	// Biology
	{ID: "bio-1", Subject: Biology, Difficulty: adaptive.Easy, Prompt: "Which organelle releases energy by aerobic respiration?",
		Answer: "Mitochondria", Distractors: [3]string{"Ribosome", "Nucleus", "Cell membrane"}, Explanation: "Aerobic respiration happens in the mitochondria."},
	{ID: "bio-2", Subject: Biology, Difficulty: adaptive.Easy, Prompt: "What do red blood cells carry around the body?",
		Answer: "Oxygen", Distractors: [3]string{"Glucose", "Antibodies", "Urea"}, Explanation: "Haemoglobin in red blood cells binds oxygen."},
	{ID: "bio-3", Subject: Biology, Difficulty: adaptive.Medium, Prompt: "Which enzyme breaks down starch into sugars?",
		Answer: "Amylase", Distractors: [3]string{"Protease", "Lipase", "Catalase"}, Explanation: "Amylase digests starch into maltose."},
	{ID: "bio-4", Subject: Biology, Difficulty: adaptive.Medium, Prompt: "Where in the plant cell does photosynthesis take place?",
		Answer: "Chloroplast", Distractors: [3]string{"Vacuole", "Cell wall", "Mitochondria"}, Explanation: "Chloroplasts contain chlorophyll."},
	{ID: "bio-5", Subject: Biology, Difficulty: adaptive.Hard, Prompt: "Which hormone lowers blood glucose concentration?",
		Answer: "Insulin", Distractors: [3]string{"Glucagon", "Adrenaline", "Thyroxine"}, Explanation: "Insulin makes cells take up glucose."},
	{ID: "bio-6", Subject: Biology, Difficulty: adaptive.Hard, Prompt: "What type of cell division produces gametes?",
		Answer: "Meiosis", Distractors: [3]string{"Mitosis", "Binary fission", "Cloning"}, Explanation: "Meiosis halves the chromosome number."},

	// Chemistry
	{ID: "chem-1", Subject: Chemistry, Difficulty: adaptive.Easy, Prompt: "What is the chemical symbol for sodium?",
		Answer: "Na", Distractors: [3]string{"S", "So", "Sd"}, Explanation: "Sodium comes from the Latin natrium."},
	{ID: "chem-2", Subject: Chemistry, Difficulty: adaptive.Easy, Prompt: "What is the pH of a neutral solution?",
		Answer: "7", Distractors: [3]string{"0", "1", "14"}, Explanation: "Neutral solutions have pH 7."},
	{ID: "chem-3", Subject: Chemistry, Difficulty: adaptive.Medium, Prompt: "Which gas turns limewater cloudy?",
		Answer: "Carbon dioxide", Distractors: [3]string{"Oxygen", "Hydrogen", "Chlorine"}, Explanation: "CO2 forms insoluble calcium carbonate."},
	{ID: "chem-4", Subject: Chemistry, Difficulty: adaptive.Medium, Prompt: "Group 1 elements are known as the...",
		Answer: "Alkali metals", Distractors: [3]string{"Halogens", "Noble gases", "Transition metals"}, Explanation: "Group 1 metals form alkaline hydroxides."},
	{ID: "chem-5", Subject: Chemistry, Difficulty: adaptive.Hard, Prompt: "What is the relative formula mass of H2O?",
		Answer: "18", Distractors: [3]string{"16", "17", "20"}, Explanation: "2 × 1 + 16 = 18."},
	{ID: "chem-6", Subject: Chemistry, Difficulty: adaptive.Hard, Prompt: "Which ion is produced by acids in water?",
		Answer: "H+", Distractors: [3]string{"OH-", "Cl-", "Na+"}, Explanation: "Acids release hydrogen ions."},

	// Physics
	{ID: "phys-1", Subject: Physics, Difficulty: adaptive.Easy, Prompt: "What is the unit of force?",
		Answer: "Newton", Distractors: [3]string{"Joule", "Watt", "Pascal"}, Explanation: "Force is measured in newtons (N)."},
	{ID: "phys-2", Subject: Physics, Difficulty: adaptive.Easy, Prompt: "What is the unit of electrical resistance?",
		Answer: "Ohm", Distractors: [3]string{"Volt", "Amp", "Coulomb"}, Explanation: "Resistance is measured in ohms (Ω)."},
	{ID: "phys-3", Subject: Physics, Difficulty: adaptive.Medium, Prompt: "A 2 kg mass accelerates at 3 m/s². What is the force in N?",
		Answer: "6", Distractors: [3]string{"1.5", "5", "9"}, Explanation: "F = ma = 2 × 3."},
	{ID: "phys-4", Subject: Physics, Difficulty: adaptive.Medium, Prompt: "Which wave is longitudinal?",
		Answer: "Sound", Distractors: [3]string{"Light", "Radio", "X-ray"}, Explanation: "Sound vibrates parallel to the direction of travel."},
	{ID: "phys-5", Subject: Physics, Difficulty: adaptive.Hard, Prompt: "Current 2 A flows through 6 Ω. What is the potential difference in V?",
		Answer: "12", Distractors: [3]string{"3", "8", "4"}, Explanation: "V = IR = 2 × 6."},
	{ID: "phys-6", Subject: Physics, Difficulty: adaptive.Hard, Prompt: "What is the kinetic energy in J of 4 kg moving at 3 m/s?",
		Answer: "18", Distractors: [3]string{"12", "24", "36"}, Explanation: "KE = ½mv² = 0.5 × 4 × 9."},

	// English
	{ID: "eng-1", Subject: English, Difficulty: adaptive.Easy, Prompt: "Which word is a verb?",
		Answer: "Run", Distractors: [3]string{"Happy", "Table", "Quickly"}, Explanation: "Verbs describe actions."},
	{ID: "eng-2", Subject: English, Difficulty: adaptive.Easy, Prompt: "\"As brave as a lion\" is an example of a...",
		Answer: "Simile", Distractors: [3]string{"Metaphor", "Onomatopoeia", "Alliteration"}, Explanation: "Similes compare using as or like."},
	{ID: "eng-3", Subject: English, Difficulty: adaptive.Medium, Prompt: "Who wrote \"An Inspector Calls\"?",
		Answer: "J.B. Priestley", Distractors: [3]string{"George Orwell", "Charles Dickens", "William Golding"}, Explanation: "Priestley wrote it in 1945."},
	{ID: "eng-4", Subject: English, Difficulty: adaptive.Medium, Prompt: "A fourteen-line poem is called a...",
		Answer: "Sonnet", Distractors: [3]string{"Haiku", "Limerick", "Ballad"}, Explanation: "Sonnets have fourteen lines."},
	{ID: "eng-5", Subject: English, Difficulty: adaptive.Hard, Prompt: "In Macbeth, who says \"Out, damned spot!\"?",
		Answer: "Lady Macbeth", Distractors: [3]string{"Macbeth", "Banquo", "Macduff"}, Explanation: "Act 5 Scene 1, the sleepwalking scene."},
	{ID: "eng-6", Subject: English, Difficulty: adaptive.Hard, Prompt: "A story told by a narrator who cannot be trusted has an...",
		Answer: "Unreliable narrator", Distractors: [3]string{"Omniscient narrator", "Epistolary form", "Dramatic irony"}, Explanation: "The reader must question the account."},
}
