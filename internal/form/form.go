// Package form validates draft input and submits new entries into the
// collection, but only while the admin gate is unlocked.
package form

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Abhi22shek/portfolio-core/internal/collection"
	"github.com/Abhi22shek/portfolio-core/internal/gate"
	"github.com/Abhi22shek/portfolio-core/internal/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// ErrLocked is returned by Submit when the admin gate is locked.
var ErrLocked = errors.New("admin mode is locked")

// Form binds draft validation to a gate and a target collection.
type Form struct {
	gate *gate.Gate
	col  *collection.Collection
}

// New constructs a form submitting into col, guarded by g.
func New(g *gate.Gate, col *collection.Collection) *Form {
	return &Form{gate: g, col: col}
}

// NormalizeTags turns a comma-separated tag string into an ordered tag
// list: split on comma, trim each segment, drop empty ones. Duplicates are
// kept on purpose; only entry IDs need set-like uniqueness.
func NormalizeTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Validate checks the draft and, on success, mints a complete Entry with a
// fresh ID and creation timestamp. Field errors come back as a
// validation.Errors map keyed by the offending json field name.
func (f *Form) Validate(draft models.DraftEntry) (models.Entry, error) {
	d := draft
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.Media = strings.TrimSpace(d.Media)

	err := validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required),
		validation.Field(&d.Description, validation.Required),
		validation.Field(&d.Media, is.URL),
	)
	if err != nil {
		return models.Entry{}, err
	}

	return models.Entry{
		ID:          uuid.NewString(),
		Title:       d.Title,
		Description: d.Description,
		Tags:        NormalizeTags(d.Tags),
		Media:       d.Media,
		Featured:    d.Featured,
		CreatedAt:   time.Now().Unix(),
	}, nil
}

// Submit validates the draft and adds the resulting entry to the
// collection. It refuses with ErrLocked while the gate is locked. On
// success the draft is reset to empty so stale values never linger.
func (f *Form) Submit(draft *models.DraftEntry) (models.Entry, error) {
	if !f.gate.Unlocked() {
		return models.Entry{}, ErrLocked
	}
	entry, err := f.Validate(*draft)
	if err != nil {
		return models.Entry{}, err
	}
	if err := f.col.Add(entry); err != nil {
		return models.Entry{}, fmt.Errorf("submit entry: %w", err)
	}
	*draft = models.DraftEntry{}
	return entry, nil
}

// ValidateContact checks a contact-form message before it is handed to the
// notification sender. Email is checked for format only.
func ValidateContact(m models.ContactMessage) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Message = strings.TrimSpace(m.Message)

	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required),
		validation.Field(&m.Email, validation.Required, is.EmailFormat),
		validation.Field(&m.Subject, validation.Required),
		validation.Field(&m.Message, validation.Required),
	)
}
