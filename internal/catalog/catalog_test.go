package catalog

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewRegistry_SeedIsValid(t *testing.T) {
	reg, err := NewRegistry(Seed())
	if err != nil {
		t.Fatalf("NewRegistry(Seed()) error: %v", err)
	}
	if len(reg.Courses()) == 0 {
		t.Fatal("seed catalog is empty")
	}
	for _, c := range reg.Courses() {
		if c.TotalItems() == 0 {
			t.Errorf("course %s has no items", c.ID)
		}
		if len(c.QuizItems()) == 0 {
			t.Errorf("course %s has no quizzes", c.ID)
		}
	}
}

func TestNewRegistry_RejectsDuplicates(t *testing.T) {
	tests := []struct {
		name    string
		courses []Course
		errPart string
	}{
		{
			name: "duplicate course id",
			courses: []Course{
				{ID: "c1"},
				{ID: "c1"},
			},
			errPart: "duplicate course id",
		},
		{
			name: "duplicate module id",
			courses: []Course{
				{ID: "c1", Modules: []Module{{ID: "m1"}, {ID: "m1"}}},
			},
			errPart: "duplicate module id",
		},
		{
			name: "duplicate item id within module",
			courses: []Course{
				{ID: "c1", Modules: []Module{{ID: "m1", Items: []ModuleItem{
					{ID: "i1", Kind: KindVideo},
					{ID: "i1", Kind: KindNotes},
				}}}},
			},
			errPart: "duplicate item id",
		},
		{
			name: "correct option out of range",
			courses: []Course{
				{ID: "c1", Modules: []Module{{ID: "m1", Items: []ModuleItem{
					{ID: "i1", Kind: KindQuiz, Questions: []QuizQuestion{
						{ID: "q1", Options: []string{"a", "b"}, CorrectOption: 2},
					}},
				}}}},
			},
			errPart: "out of range",
		},
		{
			name: "unknown item kind",
			courses: []Course{
				{ID: "c1", Modules: []Module{{ID: "m1", Items: []ModuleItem{
					{ID: "i1", Kind: "podcast"},
				}}}},
			},
			errPart: "unknown kind",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegistry(tc.courses)
			if err == nil {
				t.Fatal("NewRegistry accepted invalid catalog")
			}
			if !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("error %q does not mention %q", err, tc.errPart)
			}
		})
	}
}

func TestRegistry_SameItemIDAcrossModulesAllowed(t *testing.T) {
	reg, err := NewRegistry([]Course{
		{ID: "c1", Modules: []Module{
			{ID: "m1", Items: []ModuleItem{{ID: "i1", Kind: KindVideo}}},
			{ID: "m2", Items: []ModuleItem{{ID: "i1", Kind: KindVideo}}},
		}},
	})
	if err != nil {
		t.Fatalf("NewRegistry error: %v", err)
	}

	a, _ := reg.Item("c1", "m1", "i1")
	b, _ := reg.Item("c1", "m2", "i1")
	if a == b {
		t.Error("items in different modules resolved to the same entry")
	}
}

func TestRegistry_Lookups(t *testing.T) {
	reg, err := NewRegistry(Seed())
	if err != nil {
		t.Fatalf("NewRegistry error: %v", err)
	}

	first := reg.Courses()[0]
	if _, ok := reg.Course(first.ID); !ok {
		t.Errorf("Course(%q) not found", first.ID)
	}
	if _, ok := reg.Course("no-such-course"); ok {
		t.Error("Course returned ok for an unknown id")
	}
	if _, ok := reg.Module(first.ID, first.Modules[0].ID); !ok {
		t.Error("Module lookup failed for a seeded module")
	}
	if _, ok := reg.Item(first.ID, first.Modules[0].ID, "no-such-item"); ok {
		t.Error("Item returned ok for an unknown id")
	}
}

func TestItemRefKey(t *testing.T) {
	ref := ItemRef{CourseID: "c", ModuleID: "m", ItemID: "i"}
	if got := ref.Key(); got != "c/m/i" {
		t.Errorf("Key() = %q, want c/m/i", got)
	}
}

func TestQuizAnswersNeverSerialized(t *testing.T) {
	q := QuizQuestion{ID: "q1", Prompt: "?", Options: []string{"a", "b"}, CorrectOption: 1}
	data, err := json.Marshal(q)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "CorrectOption") || strings.Contains(string(data), "correctOption") {
		t.Errorf("serialized question leaks the answer: %s", data)
	}
}
