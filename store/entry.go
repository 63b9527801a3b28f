package store

import "time"

// Entry is a cached resolution of a single source page.
type Entry struct {
	// Source is the page the entry was resolved from. It is the key in the file and not repeated in the record.
	Source string `json:"-"`

	// URL is the embedded player address extracted from the source page.
	URL string `json:"url" jsonschema:"title=Resolved URL,description=Embedded player address extracted from the source page"`

	// Timestamp is the resolution time in unix milliseconds.
	Timestamp int64 `json:"timestamp" jsonschema:"title=Timestamp,description=Resolution time in unix milliseconds"`
}

// ResolvedAt returns the resolution time.
func (e Entry) ResolvedAt() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Fresh reports whether the entry is younger than ttl at now.
func (e Entry) Fresh(now time.Time, ttl time.Duration) bool {
	return IsFresh(e, now, ttl)
}

// IsFresh reports whether now - entry.ResolvedAt() < ttl.
func IsFresh(entry Entry, now time.Time, ttl time.Duration) bool {
	return now.Sub(entry.ResolvedAt()) < ttl
}

// File is the on-disk layout of the store: source page -> entry.
type File map[string]Entry
