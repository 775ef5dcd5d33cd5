package catalog

import (
	"fmt"
	"sort"
)

type ItemKind string

const (
	KindVideo      ItemKind = "video"
	KindNotes      ItemKind = "notes"
	KindQuiz       ItemKind = "quiz"
	KindAssignment ItemKind = "assignment"
)

// QuizQuestion has exactly one correct option, addressed by index.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"-"`
	Explanation   string   `json:"explanation"`
}

// ModuleItem is a tagged union on Kind: exactly the payload fields for its
// kind are set, everything else stays zero.
type ModuleItem struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Kind     ItemKind `json:"kind"`
	Duration string   `json:"duration,omitempty"`

	VideoURL       string         `json:"videoUrl,omitempty"`
	NotesURL       string         `json:"notesUrl,omitempty"`
	Questions      []QuizQuestion `json:"questions,omitempty"`
	AssignmentText string         `json:"assignmentText,omitempty"`
}

type Module struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Items []ModuleItem `json:"items"`
}

type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Level       string   `json:"level"`
	Duration    string   `json:"duration"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	Instructor  string   `json:"instructor"`
	Modules     []Module `json:"modules"`
}

// TotalItems counts lesson items across all modules.
func (c *Course) TotalItems() int {
	n := 0
	for _, m := range c.Modules {
		n += len(m.Items)
	}
	return n
}

// QuizItems returns module id + item pairs for every quiz in module order.
func (c *Course) QuizItems() []ItemRef {
	var refs []ItemRef
	for _, m := range c.Modules {
		for _, it := range m.Items {
			if it.Kind == KindQuiz {
				refs = append(refs, ItemRef{CourseID: c.ID, ModuleID: m.ID, ItemID: it.ID})
			}
		}
	}
	return refs
}

// ItemRef addresses one lesson item. Key is the fully qualified completion
// key; bare item ids repeat across modules and are never used alone.
type ItemRef struct {
	CourseID string `json:"courseId"`
	ModuleID string `json:"moduleId"`
	ItemID   string `json:"itemId"`
}

func (r ItemRef) Key() string {
	return r.CourseID + "/" + r.ModuleID + "/" + r.ItemID
}

// Registry is the process-wide read-only course catalog, built once at
// startup. It has no mutation hooks.
type Registry struct {
	courses map[string]*Course
	order   []string
}

// NewRegistry validates and indexes the course set. Validation failures are
// authoring errors in the seed data and abort startup.
func NewRegistry(courses []Course) (*Registry, error) {
	r := &Registry{courses: make(map[string]*Course, len(courses))}
	for i := range courses {
		c := &courses[i]
		if c.ID == "" {
			return nil, fmt.Errorf("course %q has empty id", c.Title)
		}
		if _, dup := r.courses[c.ID]; dup {
			return nil, fmt.Errorf("duplicate course id %q", c.ID)
		}
		seenModules := make(map[string]bool, len(c.Modules))
		for _, m := range c.Modules {
			if seenModules[m.ID] {
				return nil, fmt.Errorf("course %s: duplicate module id %q", c.ID, m.ID)
			}
			seenModules[m.ID] = true
			seenItems := make(map[string]bool, len(m.Items))
			for _, it := range m.Items {
				if seenItems[it.ID] {
					return nil, fmt.Errorf("course %s module %s: duplicate item id %q", c.ID, m.ID, it.ID)
				}
				seenItems[it.ID] = true
				if err := validateItem(c.ID, m.ID, it); err != nil {
					return nil, err
				}
			}
		}
		r.courses[c.ID] = c
		r.order = append(r.order, c.ID)
	}
	return r, nil
}

func validateItem(courseID, moduleID string, it ModuleItem) error {
	switch it.Kind {
	case KindVideo, KindNotes, KindAssignment:
		return nil
	case KindQuiz:
		for _, q := range it.Questions {
			if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
				return fmt.Errorf("course %s module %s quiz %s: question %s correct option %d out of range",
					courseID, moduleID, it.ID, q.ID, q.CorrectOption)
			}
		}
		return nil
	default:
		return fmt.Errorf("course %s module %s item %s: unknown kind %q", courseID, moduleID, it.ID, it.Kind)
	}
}

// Courses returns all courses in seed order.
func (r *Registry) Courses() []*Course {
	out := make([]*Course, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.courses[id])
	}
	return out
}

func (r *Registry) Course(id string) (*Course, bool) {
	c, ok := r.courses[id]
	return c, ok
}

func (r *Registry) Module(courseID, moduleID string) (*Module, bool) {
	c, ok := r.courses[courseID]
	if !ok {
		return nil, false
	}
	for i := range c.Modules {
		if c.Modules[i].ID == moduleID {
			return &c.Modules[i], true
		}
	}
	return nil, false
}

func (r *Registry) Item(courseID, moduleID, itemID string) (*ModuleItem, bool) {
	m, ok := r.Module(courseID, moduleID)
	if !ok {
		return nil, false
	}
	for i := range m.Items {
		if m.Items[i].ID == itemID {
			return &m.Items[i], true
		}
	}
	return nil, false
}

// Categories returns the distinct course categories, sorted.
func (r *Registry) Categories() []string {
	set := map[string]bool{}
	for _, c := range r.courses {
		if c.Category != "" {
			set[c.Category] = true
		}
	}
	out := make([]string, 0, len(set))
	for cat := range set {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}
