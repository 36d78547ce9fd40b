package missions

import "fmt"

// Template is a catalog entry a daily mission is generated from.
type Template struct {
	Type        MissionType
	Title       string
	Description string
	Target      int
	XPReward    int
	Subject     string
	GameMode    string
}

func (t Template) build(id, date string) Mission {
	return Mission{
		ID:          id,
		Type:        t.Type,
		Title:       t.Title,
		Description: t.Description,
		Target:      t.Target,
		XPReward:    t.XPReward,
		Subject:     t.Subject,
		GameMode:    t.GameMode,
		Date:        date,
	}
}

// GenericTemplates are missions any game can advance.
var GenericTemplates = []Template{
	{Type: AnswerCorrect, Title: "Sharp Shooter", Description: "Answer 25 questions correctly", Target: 25, XPReward: 50},
	{Type: PlayGames, Title: "Warm Up", Description: "Play 3 games", Target: 3, XPReward: 40},
	{Type: ReachCombo, Title: "Combo Breaker", Description: "Reach a 10 answer combo", Target: 10, XPReward: 60},
	{Type: PerfectGame, Title: "Flawless", Description: "Finish a game without a wrong answer", Target: 1, XPReward: 75},
	{Type: ScorePoints, Title: "High Roller", Description: "Score 5000 points across all games", Target: 5000, XPReward: 50},
	{Type: PlayMode, Title: "Against the Clock", Description: "Play 2 Speed Round games", Target: 2, XPReward: 40, GameMode: "speed_round"},
}

// SubjectTemplate returns the subject-focus mission for subject.
func SubjectTemplate(subject string) Template {
	return Template{
		Type:        SubjectCorrect,
		Title:       subject + " Focus",
		Description: fmt.Sprintf("Answer 15 %s questions correctly", subject),
		Target:      15,
		XPReward:    50,
		Subject:     subject,
	}
}

// Catalog returns the generic templates plus one template per subject.
func Catalog(subjects []string) []Template {
	out := make([]Template, 0, len(GenericTemplates)+len(subjects))
	out = append(out, GenericTemplates...)
	for _, s := range subjects {
		out = append(out, SubjectTemplate(s))
	}
	return out
}
