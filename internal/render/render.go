// Package render tracks card identity across filter changes.
//
// It does not animate anything itself. It owns the sequencing contract the
// visual layer relies on: when the filtered view changes, cards leaving the
// view exit, cards present in both views move to their new position without
// being recreated, and new cards enter. Cards are cached by entry ID even
// while out of view, so an entry that leaves and later returns keeps the
// same card object and never flickers through a destroy/recreate cycle.
package render

import (
	"github.com/Abhi22shek/portfolio-core/internal/models"
)

// Op classifies a transition emitted by a reconciliation.
type Op int

const (
	// OpEnter marks a card entering the view.
	OpEnter Op = iota
	// OpMove marks a card that survived the view change and was
	// repositioned, not recreated.
	OpMove
	// OpExit marks a card that left the view.
	OpExit
)

// String returns the lowercase name of the op.
func (o Op) String() string {
	switch o {
	case OpEnter:
		return "enter"
	case OpMove:
		return "move"
	case OpExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Transition describes one card's part in a view change.
type Transition struct {
	// Op is the kind of transition.
	Op Op
	// ID identifies the card.
	ID string
	// Index is the card's position in the new view, or -1 for exits.
	Index int
	// Entry is the card content after the change (zero value for exits).
	Entry models.Entry
}

// Card is the stable visual identity of one entry. The pointer stays the
// same for as long as the reconciler has seen the ID, in view or not.
type Card struct {
	// ID is the entry ID the card is keyed by.
	ID string
	// Entry is the current content of the card.
	Entry models.Entry
	// Mounts counts how many times a card for this ID was created from
	// scratch. A card that merely leaves and re-enters the view keeps
	// Mounts unchanged: re-entry is not a remount.
	Mounts int
	// InView reports whether the card is part of the current view.
	InView bool
}

// Reconciler diffs consecutive filtered views keyed by entry ID.
type Reconciler struct {
	cards map[string]*Card
	order []string
}

// NewReconciler creates a reconciler with an empty current view.
func NewReconciler() *Reconciler {
	return &Reconciler{cards: make(map[string]*Card)}
}

// Apply replaces the current view with the given one and returns the
// transitions between them: exits for IDs that vanished, moves for
// survivors, enters for new or returning IDs. Exits come first so the
// visual layer can play them before layout, then moves and enters in view
// order. A single Apply never emits both an exit and an enter for the same
// ID.
func (r *Reconciler) Apply(view []models.Entry) []Transition {
	next := make(map[string]bool, len(view))
	for _, e := range view {
		next[e.ID] = true
	}

	var transitions []Transition
	for _, id := range r.order {
		if !next[id] {
			r.cards[id].InView = false
			transitions = append(transitions, Transition{Op: OpExit, ID: id, Index: -1})
		}
	}

	order := make([]string, 0, len(view))
	for i, e := range view {
		card, known := r.cards[e.ID]
		switch {
		case known && card.InView:
			card.Entry = e
			transitions = append(transitions, Transition{Op: OpMove, ID: e.ID, Index: i, Entry: e})
		case known:
			// Returning card: same identity, plays an enter transition.
			card.Entry = e
			card.InView = true
			transitions = append(transitions, Transition{Op: OpEnter, ID: e.ID, Index: i, Entry: e})
		default:
			r.cards[e.ID] = &Card{ID: e.ID, Entry: e, Mounts: 1, InView: true}
			transitions = append(transitions, Transition{Op: OpEnter, ID: e.ID, Index: i, Entry: e})
		}
		order = append(order, e.ID)
	}
	r.order = order
	return transitions
}

// Card returns the card for id, or nil if the reconciler has never seen
// it. The returned pointer is the card's identity: it is stable across
// Apply calls, including across a leave-and-return cycle.
func (r *Reconciler) Card(id string) *Card {
	return r.cards[id]
}

// Cards returns the cards of the current view in view order.
func (r *Reconciler) Cards() []*Card {
	cards := make([]*Card, 0, len(r.order))
	for _, id := range r.order {
		cards = append(cards, r.cards[id])
	}
	return cards
}

// Forget drops the cached card for an ID. Call it when the entry itself is
// removed from the collection, so the cache does not grow past the
// collection's size.
func (r *Reconciler) Forget(id string) {
	if card, ok := r.cards[id]; ok && !card.InView {
		delete(r.cards, id)
	}
}
