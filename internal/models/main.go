// Package models defines the core data structures for portfolio content.
package models

// FilterAll is the sentinel tag for the highlight view. It does not show
// every entry: the "all" view is a curated reel of featured entries only.
const FilterAll = "all"

// Entry represents one content item (project, skill, testimonial)
// held by a collection.
type Entry struct {
	// ID is the unique, session-stable identifier of the entry.
	ID string `json:"id"`
	// Title is the display name of the entry.
	Title string `json:"title"`
	// Description holds the long-form text shown on the entry card.
	Description string `json:"description"`
	// Tags is the ordered list of tags used for filtering. May be empty.
	Tags []string `json:"tags"`
	// Media is an optional URL pointing at an image or preview asset.
	Media string `json:"media,omitempty"`
	// Featured marks the entry for inclusion in the highlight ("all") view.
	Featured bool `json:"featured"`
	// CreatedAt is the unix timestamp set once at creation, never mutated.
	CreatedAt int64 `json:"created_at"`
}

// HasTag reports whether the entry carries the given tag.
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DraftEntry is the raw, unvalidated form input for a new entry.
// Tags is a single comma-separated string as typed by the user.
type DraftEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
	Media       string `json:"media"`
	Featured    bool   `json:"featured"`
}

// Filter is the transient view state selecting a subset of a collection.
// It is never persisted.
type Filter struct {
	// ActiveTag is a concrete tag, or FilterAll for the featured-only view.
	ActiveTag string `json:"active_tag"`
}

// ContactMessage is the payload handed to the notification sender.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
