package store

import (
	"context"
	"fmt"

	"studymates_server/models"
)

// SeedDemoProfiles loads a fixed set of demo students into the store. Demo mode
// runs the full matching flow against these without any external datastore.
func SeedDemoProfiles(ctx context.Context, s Store) error {
	demoProfiles := []models.UserProfile{
		{
			UserID: "demo-1", Name: "Alex Rivera", Email: "alex.rivera@demo.studymates.app",
			Major: "Computer Science", Year: "Junior",
			Bio:              "Happiest when a proof finally clicks. Looking for someone to trade algorithm drills with.",
			Strengths:        []string{"Computer Science", "Mathematics", "Physics"},
			Weaknesses:       []string{"Literature", "History"},
			StudyPreferences: []string{"Evening sessions", "Library", "Practice problems"},
			ProfileCompleted: true,
		},
		{
			UserID: "demo-2", Name: "Maya Okafor", Email: "maya.okafor@demo.studymates.app",
			Major: "Biology", Year: "Sophomore",
			Bio:              "Pre-med, flashcard devotee. Can explain the Krebs cycle in my sleep.",
			Strengths:        []string{"Biology", "Chemistry", "Psychology"},
			Weaknesses:       []string{"Statistics", "Computer Science"},
			StudyPreferences: []string{"Morning sessions", "Group study", "Flashcards"},
			ProfileCompleted: true,
		},
		{
			UserID: "demo-3", Name: "Daniel Park", Email: "daniel.park@demo.studymates.app",
			Major: "Economics", Year: "Senior",
			Bio:              "Econometrics tutor, terrible at remembering dates. Will swap stats help for history notes.",
			Strengths:        []string{"Economics", "Mathematics", "Statistics"},
			Weaknesses:       []string{"History", "Foreign Languages"},
			StudyPreferences: []string{"Evening sessions", "Online sessions", "Practice exams"},
			ProfileCompleted: true,
		},
		{
			UserID: "demo-4", Name: "Sofia Marchetti", Email: "sofia.marchetti@demo.studymates.app",
			Major: "Philosophy", Year: "Junior",
			Bio:              "Essay machine. Give me a thesis and a quiet corner and I'm set.",
			Strengths:        []string{"Literature", "Philosophy", "History"},
			Weaknesses:       []string{"Mathematics", "Chemistry"},
			StudyPreferences: []string{"Quiet study", "Library", "Afternoon sessions"},
			ProfileCompleted: true,
		},
		{
			UserID: "demo-5", Name: "Priya Nair", Email: "priya.nair@demo.studymates.app",
			Major: "Psychology", Year: "Freshman",
			Bio:              "New to campus, old hand at study groups. Strong on theory, shaky on lab math.",
			Strengths:        []string{"Psychology", "Sociology", "Biology"},
			Weaknesses:       []string{"Physics", "Statistics"},
			StudyPreferences: []string{"Group study", "Morning sessions", "Flashcards"},
			ProfileCompleted: true,
		},
		{
			UserID: "demo-6", Name: "Tom Beckett", Email: "tom.beckett@demo.studymates.app",
			Major: "Physics", Year: "Senior",
			Bio:              "Whiteboard maximalist. Derivations over memorization, always.",
			Strengths:        []string{"Physics", "Mathematics", "Computer Science"},
			Weaknesses:       []string{"Psychology", "Literature"},
			StudyPreferences: []string{"Evening sessions", "Whiteboard sessions", "Practice problems"},
			ProfileCompleted: true,
		},
	}

	for i := range demoProfiles {
		demoProfiles[i].CreatedAt = models.NowTimestamp()
		if err := s.PutProfile(ctx, &demoProfiles[i]); err != nil {
			return fmt.Errorf("failed to seed demo profile '%s': %w", demoProfiles[i].UserID, err)
		}
	}
	return nil
}
