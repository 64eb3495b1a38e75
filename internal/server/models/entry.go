// Package models defines the registry's persisted records.
package models

import "slices"

// Principal is an externally authenticated caller or owner identity.
// It is opaque: compare with == and never normalise it.
type Principal string

// Entry is one registered song.
type Entry struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Artist         string    `json:"artist"`
	Owner          Principal `json:"owner"`
	Duration       int64     `json:"duration"`
	CreationHeight int64     `json:"creation_height"`
	Genre          string    `json:"genre"`
	Tags           []string  `json:"tags"`
}

// Draft carries the caller-supplied fields of a new entry.
type Draft struct {
	Title    string
	Artist   string
	Duration int64
	Genre    string
	Tags     []string
}

// Details are the fields an owner may rewrite after creation.
type Details struct {
	Title    string
	Duration int64
	Genre    string
	Tags     []string
}

// NewEntry assembles an entry from a draft. Tags are copied.
func NewEntry(id int64, owner Principal, height int64, d Draft) Entry {
	return Entry{
		ID:             id,
		Title:          d.Title,
		Artist:         d.Artist,
		Owner:          owner,
		Duration:       d.Duration,
		CreationHeight: height,
		Genre:          d.Genre,
		Tags:           slices.Clone(d.Tags),
	}
}

// Clone returns a deep copy.
func (e Entry) Clone() Entry {
	e.Tags = slices.Clone(e.Tags)
	return e
}

// WithOwner returns a copy of e with only the owner replaced.
func (e Entry) WithOwner(owner Principal) Entry {
	out := e.Clone()
	out.Owner = owner
	return out
}

// WithDetails returns a copy of e with title, duration, genre and tags
// replaced. Artist, owner and creation height carry over.
func (e Entry) WithDetails(d Details) Entry {
	out := e.Clone()
	out.Title = d.Title
	out.Duration = d.Duration
	out.Genre = d.Genre
	out.Tags = slices.Clone(d.Tags)
	return out
}
