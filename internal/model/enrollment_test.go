package model

import "testing"

func TestMarkCompleted_Monotonic(t *testing.T) {
	e := Enrollment{}

	if !e.MarkCompleted("c/m1/i1") {
		t.Error("first MarkCompleted returned false")
	}
	if e.MarkCompleted("c/m1/i1") {
		t.Error("second MarkCompleted returned true")
	}
	if len(e.CompletedItems) != 1 {
		t.Errorf("CompletedItems has %d entries, want 1", len(e.CompletedItems))
	}
}

func TestCompletionSet(t *testing.T) {
	e := Enrollment{CompletedItems: []string{"c/m1/i1", "c/m2/i1"}}
	set := e.CompletionSet()

	if !set["c/m1/i1"] || !set["c/m2/i1"] {
		t.Error("CompletionSet is missing completed keys")
	}
	if set["c/m1/i2"] {
		t.Error("CompletionSet contains a key that was never completed")
	}
}
