// Package progress holds the course bookkeeping shared by both enrollment
// backends: progress percentages, quiz grading and the certificate gate.
// Everything here is pure; storage stays behind repository.EnrollmentStore.
package progress

import (
	"math"

	"shakti_backend/internal/catalog"
)

// Snapshot is the computed progress state for one course and one learner.
type Snapshot struct {
	ModulePercents map[string]int   `json:"modulePercents"`
	OverallPercent int              `json:"overallPercent"`
	NextIncomplete *catalog.ItemRef `json:"nextIncomplete,omitempty"`
	AllComplete    bool             `json:"allComplete"`
}

// ComputeProgress derives the progress snapshot from the course structure
// and the set of completed item keys. It is deterministic and has no side
// effects; callers recompute instead of mutating stored percentages.
func ComputeProgress(course *catalog.Course, completed map[string]bool) Snapshot {
	snap := Snapshot{
		ModulePercents: make(map[string]int, len(course.Modules)),
	}

	totalItems := 0
	totalDone := 0

	for _, m := range course.Modules {
		done := 0
		for _, it := range m.Items {
			ref := catalog.ItemRef{CourseID: course.ID, ModuleID: m.ID, ItemID: it.ID}
			if completed[ref.Key()] {
				done++
			} else if snap.NextIncomplete == nil {
				r := ref
				snap.NextIncomplete = &r
			}
		}
		snap.ModulePercents[m.ID] = percent(done, len(m.Items))
		totalItems += len(m.Items)
		totalDone += done
	}

	snap.OverallPercent = percent(totalDone, totalItems)
	snap.AllComplete = totalItems > 0 && totalDone == totalItems
	return snap
}

// percent is round(100*done/total), and 0 for an empty denominator so an
// itemless module or course never divides by zero.
func percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}
