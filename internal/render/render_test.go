package render

import (
	"testing"

	"github.com/Abhi22shek/portfolio-core/internal/models"
)

func entry(id string, tags ...string) models.Entry {
	return models.Entry{ID: id, Title: id, Tags: tags}
}

func opsByID(transitions []Transition) map[string][]Op {
	out := make(map[string][]Op)
	for _, t := range transitions {
		out[t.ID] = append(out[t.ID], t.Op)
	}
	return out
}

func TestApply_InitialViewEnters(t *testing.T) {
	r := NewReconciler()

	transitions := r.Apply([]models.Entry{entry("a"), entry("b")})
	if len(transitions) != 2 {
		t.Fatalf("expected 2 transitions, got %d", len(transitions))
	}
	for i, tr := range transitions {
		if tr.Op != OpEnter {
			t.Errorf("transition %d: expected enter, got %s", i, tr.Op)
		}
		if tr.Index != i {
			t.Errorf("transition %d: expected index %d, got %d", i, i, tr.Index)
		}
	}
}

func TestApply_ExitMoveEnter(t *testing.T) {
	r := NewReconciler()
	r.Apply([]models.Entry{entry("a"), entry("b"), entry("c")})

	transitions := r.Apply([]models.Entry{entry("c"), entry("d")})
	ops := opsByID(transitions)

	if got := ops["a"]; len(got) != 1 || got[0] != OpExit {
		t.Errorf("a: expected [exit], got %v", got)
	}
	if got := ops["b"]; len(got) != 1 || got[0] != OpExit {
		t.Errorf("b: expected [exit], got %v", got)
	}
	if got := ops["c"]; len(got) != 1 || got[0] != OpMove {
		t.Errorf("c: expected [move], got %v", got)
	}
	if got := ops["d"]; len(got) != 1 || got[0] != OpEnter {
		t.Errorf("d: expected [enter], got %v", got)
	}
}

func TestApply_SurvivorNeverExitsAndEnters(t *testing.T) {
	r := NewReconciler()
	r.Apply([]models.Entry{entry("a"), entry("b")})

	// Reverse the order: both survive, neither may flicker.
	transitions := r.Apply([]models.Entry{entry("b"), entry("a")})
	for id, ops := range opsByID(transitions) {
		if len(ops) != 1 || ops[0] != OpMove {
			t.Errorf("%s: expected a single move, got %v", id, ops)
		}
	}
}

func TestApply_IdentityStableAcrossFilterFlips(t *testing.T) {
	frontend := []models.Entry{entry("p1", "frontend"), entry("p3", "frontend")}
	backend := []models.Entry{entry("p2", "backend")}

	r := NewReconciler()
	r.Apply(frontend)

	p1 := r.Card("p1")
	if p1 == nil || p1.Mounts != 1 {
		t.Fatalf("expected p1 mounted once, got %+v", p1)
	}

	// frontend -> backend -> frontend: p1 leaves the view and returns, but
	// keeps the exact same card. Re-entry plays an enter transition yet is
	// not a remount.
	r.Apply(backend)
	offView := r.Card("p1")
	if offView != p1 {
		t.Fatal("card identity lost while out of view")
	}
	if offView.InView {
		t.Error("expected p1 out of view during backend filter")
	}

	transitions := r.Apply(frontend)
	ops := opsByID(transitions)
	if got := ops["p1"]; len(got) != 1 || got[0] != OpEnter {
		t.Errorf("p1: expected [enter] on return, got %v", got)
	}

	returned := r.Card("p1")
	if returned != p1 {
		t.Error("returning card was recreated instead of reused")
	}
	if returned.Mounts != 1 {
		t.Errorf("returning card counted as remount: mounts=%d", returned.Mounts)
	}
}

func TestApply_SurvivorContentUpdatedInPlace(t *testing.T) {
	r := NewReconciler()
	r.Apply([]models.Entry{entry("p1", "frontend")})
	before := r.Card("p1")

	r.Apply([]models.Entry{{ID: "p1", Title: "renamed", Tags: []string{"frontend"}}})
	after := r.Card("p1")
	if after != before {
		t.Error("surviving card was recreated instead of updated")
	}
	if after.Entry.Title != "renamed" {
		t.Errorf("card content not updated, got %q", after.Entry.Title)
	}
}

func TestApply_ExitsComeBeforeMovesAndEnters(t *testing.T) {
	r := NewReconciler()
	r.Apply([]models.Entry{entry("a"), entry("b")})

	transitions := r.Apply([]models.Entry{entry("b"), entry("c")})
	if len(transitions) != 3 {
		t.Fatalf("expected 3 transitions, got %d", len(transitions))
	}
	if transitions[0].Op != OpExit || transitions[0].ID != "a" {
		t.Errorf("expected leading exit for a, got %+v", transitions[0])
	}
	if transitions[0].Index != -1 {
		t.Errorf("exit index should be -1, got %d", transitions[0].Index)
	}
}

func TestApply_NeverExitAndEnterSameID(t *testing.T) {
	r := NewReconciler()
	r.Apply([]models.Entry{entry("a"), entry("b"), entry("c")})

	// Shuffle, drop, and re-add across several applies; within any single
	// reconciliation an id must not both exit and enter.
	views := [][]models.Entry{
		{entry("c"), entry("a")},
		{entry("b")},
		{entry("a"), entry("b"), entry("c")},
		nil,
		{entry("c")},
	}
	for _, view := range views {
		for id, ops := range opsByID(r.Apply(view)) {
			if len(ops) > 1 {
				t.Errorf("%s: multiple transitions in one apply: %v", id, ops)
			}
		}
	}
}

func TestCards_ViewOrder(t *testing.T) {
	r := NewReconciler()
	r.Apply([]models.Entry{entry("x"), entry("y"), entry("z")})

	cards := r.Cards()
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}
	for i, want := range []string{"x", "y", "z"} {
		if cards[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, cards[i].ID)
		}
	}
}

func TestApply_EmptyView(t *testing.T) {
	r := NewReconciler()
	r.Apply([]models.Entry{entry("a")})

	transitions := r.Apply(nil)
	if len(transitions) != 1 || transitions[0].Op != OpExit {
		t.Fatalf("expected single exit, got %+v", transitions)
	}
	if len(r.Cards()) != 0 {
		t.Error("expected no cards in an empty view")
	}
}

func TestForget(t *testing.T) {
	r := NewReconciler()
	r.Apply([]models.Entry{entry("a"), entry("b")})
	r.Apply([]models.Entry{entry("b")})

	// Off-view cards can be dropped once the entry itself is gone.
	r.Forget("a")
	if r.Card("a") != nil {
		t.Error("expected a forgotten after removal")
	}

	// In-view cards are protected.
	r.Forget("b")
	if r.Card("b") == nil {
		t.Error("Forget must not drop an in-view card")
	}
}
