// Package catalog holds the pieces shared by every media catalog: the common
// item record, audit timestamps, the transfer shape of the common fields and
// the service contract each catalog implements.
package catalog

import "time"

// Kind discriminates the concrete media type of an item.
type Kind string

const (
	KindBook     Kind = "LIBRO"
	KindMagazine Kind = "REVISTA"
	KindDVD      Kind = "DVD"
)

// Audit carries the server-managed timestamps. CreatedAt is set once;
// UpdatedAt moves on every mutation.
type Audit struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stamp normalizes t to the precision both supported stores keep.
func Stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// MarkCreated stamps both timestamps with the same instant.
func (a *Audit) MarkCreated(now time.Time) {
	t := Stamp(now)
	a.CreatedAt = t
	a.UpdatedAt = t
}

// MarkUpdated stamps UpdatedAt.
func (a *Audit) MarkUpdated(now time.Time) {
	a.UpdatedAt = Stamp(now)
}

// Restore carries the stored creation time over to a full-replace update and
// guarantees UpdatedAt moves strictly past the previous value.
func (a *Audit) Restore(createdAt, prevUpdatedAt time.Time) {
	a.CreatedAt = createdAt
	if !a.UpdatedAt.After(prevUpdatedAt) {
		a.UpdatedAt = Stamp(prevUpdatedAt).Add(time.Microsecond)
	}
}

// Item is the field set shared by books and magazines. Type-specific records
// embed it.
type Item struct {
	ID              int64
	Title           string
	Author          string
	PublicationYear int
	Description     string
	Available       bool
	Kind            Kind
	Audit
}
