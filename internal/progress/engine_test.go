package progress

import (
	"testing"

	"shakti_backend/internal/catalog"
)

func testCourse() *catalog.Course {
	return &catalog.Course{
		ID: "digital-literacy",
		Modules: []catalog.Module{
			{
				ID: "m1",
				Items: []catalog.ModuleItem{
					{ID: "i1", Kind: catalog.KindVideo},
					{ID: "i2", Kind: catalog.KindNotes},
					{ID: "i3", Kind: catalog.KindQuiz},
				},
			},
			{
				ID: "m2",
				Items: []catalog.ModuleItem{
					{ID: "i1", Kind: catalog.KindVideo},
					{ID: "i2", Kind: catalog.KindAssignment},
					{ID: "i3", Kind: catalog.KindQuiz},
				},
			},
		},
	}
}

func key(courseID, moduleID, itemID string) string {
	return catalog.ItemRef{CourseID: courseID, ModuleID: moduleID, ItemID: itemID}.Key()
}

func TestComputeProgress_Empty(t *testing.T) {
	snap := ComputeProgress(testCourse(), map[string]bool{})

	if snap.OverallPercent != 0 {
		t.Errorf("OverallPercent = %d, want 0", snap.OverallPercent)
	}
	if snap.AllComplete {
		t.Error("AllComplete = true on an untouched course")
	}
	if snap.NextIncomplete == nil {
		t.Fatal("NextIncomplete = nil, want first item")
	}
	if snap.NextIncomplete.ModuleID != "m1" || snap.NextIncomplete.ItemID != "i1" {
		t.Errorf("NextIncomplete = %s/%s, want m1/i1", snap.NextIncomplete.ModuleID, snap.NextIncomplete.ItemID)
	}
}

func TestComputeProgress_Partial(t *testing.T) {
	// 4 of 6 items done: 67% overall, first module at 100%.
	completed := map[string]bool{
		key("digital-literacy", "m1", "i1"): true,
		key("digital-literacy", "m1", "i2"): true,
		key("digital-literacy", "m1", "i3"): true,
		key("digital-literacy", "m2", "i1"): true,
	}
	snap := ComputeProgress(testCourse(), completed)

	if snap.OverallPercent != 67 {
		t.Errorf("OverallPercent = %d, want 67", snap.OverallPercent)
	}
	if snap.ModulePercents["m1"] != 100 {
		t.Errorf("ModulePercents[m1] = %d, want 100", snap.ModulePercents["m1"])
	}
	if snap.ModulePercents["m2"] != 33 {
		t.Errorf("ModulePercents[m2] = %d, want 33", snap.ModulePercents["m2"])
	}
	if snap.AllComplete {
		t.Error("AllComplete = true at 67%")
	}
	if snap.NextIncomplete == nil || snap.NextIncomplete.ModuleID != "m2" || snap.NextIncomplete.ItemID != "i2" {
		t.Errorf("NextIncomplete = %+v, want m2/i2", snap.NextIncomplete)
	}
}

func TestComputeProgress_SameItemIDAcrossModules(t *testing.T) {
	// i1 exists in both modules; completing it in m1 must not touch m2.
	completed := map[string]bool{
		key("digital-literacy", "m1", "i1"): true,
	}
	snap := ComputeProgress(testCourse(), completed)

	if snap.ModulePercents["m1"] != 33 {
		t.Errorf("ModulePercents[m1] = %d, want 33", snap.ModulePercents["m1"])
	}
	if snap.ModulePercents["m2"] != 0 {
		t.Errorf("ModulePercents[m2] = %d, want 0", snap.ModulePercents["m2"])
	}
}

func TestComputeProgress_AllDone(t *testing.T) {
	course := testCourse()
	completed := map[string]bool{}
	for _, m := range course.Modules {
		for _, it := range m.Items {
			completed[key(course.ID, m.ID, it.ID)] = true
		}
	}
	snap := ComputeProgress(course, completed)

	if snap.OverallPercent != 100 {
		t.Errorf("OverallPercent = %d, want 100", snap.OverallPercent)
	}
	if !snap.AllComplete {
		t.Error("AllComplete = false with every item done")
	}
	if snap.NextIncomplete != nil {
		t.Errorf("NextIncomplete = %+v, want nil", snap.NextIncomplete)
	}
}

func TestComputeProgress_NoItems(t *testing.T) {
	course := &catalog.Course{ID: "empty", Modules: []catalog.Module{{ID: "m1"}}}
	snap := ComputeProgress(course, map[string]bool{})

	if snap.OverallPercent != 0 {
		t.Errorf("OverallPercent = %d, want 0 for itemless course", snap.OverallPercent)
	}
	if snap.AllComplete {
		t.Error("AllComplete = true for itemless course")
	}
	if snap.ModulePercents["m1"] != 0 {
		t.Errorf("ModulePercents[m1] = %d, want 0", snap.ModulePercents["m1"])
	}
}

func TestPercentRounding(t *testing.T) {
	tests := []struct {
		done, total, want int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 6, 17},
		{5, 6, 83},
		{1, 2, 50},
		{3, 3, 100},
	}
	for _, tc := range tests {
		if got := percent(tc.done, tc.total); got != tc.want {
			t.Errorf("percent(%d, %d) = %d, want %d", tc.done, tc.total, got, tc.want)
		}
	}
}
