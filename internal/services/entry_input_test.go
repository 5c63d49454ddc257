package services

import (
	"reflect"
	"testing"

	"github.com/ashdelaney/platewise/internal/models"
)

func TestNormalizeEntryInputClampsAnxietyLevel(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  int
	}{
		{name: "below range", level: -3, want: 0},
		{name: "lower bound", level: 0, want: 0},
		{name: "in range", level: 7, want: 7},
		{name: "upper bound", level: 10, want: 10},
		{name: "above range", level: 42, want: 10},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			clean := NormalizeEntryInput(EntryInput{AnxietyLevel: testCase.level})
			if clean.AnxietyLevel != testCase.want {
				t.Fatalf("anxiety %d clamped to %d, want %d", testCase.level, clean.AnxietyLevel, testCase.want)
			}
		})
	}
}

func TestNormalizeEntryInputClampsEnums(t *testing.T) {
	clean := NormalizeEntryInput(EntryInput{
		FoodSource:          "Restaurant",
		EatingLocation:      models.SourceOut,
		BreathingDifficulty: "Catastrophic",
		SwallowingDifficulty: models.SeverityModerate,
	})

	if clean.FoodSource != models.SourceHome {
		t.Fatalf("out-of-domain food source clamped to %q, want %q", clean.FoodSource, models.SourceHome)
	}
	if clean.EatingLocation != models.SourceOut {
		t.Fatalf("valid eating location changed to %q", clean.EatingLocation)
	}
	if clean.BreathingDifficulty != models.SeverityNone {
		t.Fatalf("out-of-domain severity clamped to %q, want %q", clean.BreathingDifficulty, models.SeverityNone)
	}
	if clean.SwallowingDifficulty != models.SeverityModerate {
		t.Fatalf("valid severity changed to %q", clean.SwallowingDifficulty)
	}
}

func TestNormalizeEntryInputMedFieldsWithoutMeds(t *testing.T) {
	clean := NormalizeEntryInput(EntryInput{
		TookMeds:   false,
		MedTypes:   []string{models.MedTypeAllergy, models.MedTypeAnxiety},
		MedsHelped: true,
	})

	if len(clean.MedTypes) != 0 {
		t.Fatalf("expected med types emptied when no meds taken, got %#v", clean.MedTypes)
	}
	if clean.MedsHelped {
		t.Fatal("expected meds_helped forced false when no meds taken")
	}
}

func TestNormalizeEntryInputFiltersMedTypes(t *testing.T) {
	clean := NormalizeEntryInput(EntryInput{
		TookMeds: true,
		MedTypes: []string{"Other", "Painkiller", "Allergy", "Allergy", " Anxiety "},
	})

	want := []string{models.MedTypeAllergy, models.MedTypeAnxiety, models.MedTypeOther}
	if !reflect.DeepEqual(clean.MedTypes, want) {
		t.Fatalf("med types normalized to %#v, want %#v", clean.MedTypes, want)
	}
}

func TestNormalizeEntryInputTrimsFreeText(t *testing.T) {
	clean := NormalizeEntryInput(EntryInput{
		FoodEaten: "  leftovers  ",
		Concerns:  "",
	})

	if clean.FoodEaten != "leftovers" {
		t.Fatalf("food eaten trimmed to %q", clean.FoodEaten)
	}
	if clean.Concerns != "" {
		t.Fatalf("empty concerns changed to %q", clean.Concerns)
	}
}
