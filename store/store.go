// Package store persists resolved embedded players keyed by their source page.
//
// The whole store lives in one JSON file which is read in full on every access
// and rewritten in full on every change. That is fine for the handful of pages
// a deployment serves; it is not meant to scale past that.
package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/framecast/framecast/filesystem"
	"github.com/framecast/framecast/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/afero"
)

// Policy decides what happens when the cache file exists but cannot be parsed.
type Policy int

const (
	// PolicyFail surfaces a corrupt file as an *Error wrapping ErrCorrupt.
	PolicyFail Policy = iota
	// PolicyReset treats a corrupt file as an empty store and logs a warning.
	// The next Put overwrites the file.
	PolicyReset
)

func (p Policy) String() string {
	switch p {
	case PolicyReset:
		return "reset"
	default:
		return "fail"
	}
}

// Options configure a Store.
type Options struct {
	// Path of the backing file.
	Path string
	// Fs defaults to filesystem.API().
	Fs afero.Fs
	// Policy for corrupt files, PolicyFail by default.
	Policy Policy
}

// Store is a file-backed map of source page to Entry.
// It is safe for use by one process; there is no coordination between processes.
type Store struct {
	path   string
	fs     afero.Afero
	policy Policy
	mu     sync.Mutex
}

// New returns a store backed by opts.Path. Nothing is read until the first access.
func New(opts Options) *Store {
	fs := filesystem.API()
	if opts.Fs != nil {
		fs = afero.Afero{Fs: opts.Fs}
	}

	return &Store{
		path:   opts.Path,
		fs:     fs,
		policy: opts.Policy,
	}
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Get returns the entry for source, or mo.None if there is none.
func (s *Store) Get(source string) (mo.Option[Entry], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return mo.None[Entry](), err
	}

	if entry, ok := file[source]; ok {
		return mo.Some(entry), nil
	}
	return mo.None[Entry](), nil
}

// All returns every entry in the store.
func (s *Store) All() (File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

// Put records url as the resolution of source at now and rewrites the file.
// A stored timestamp is never moved backwards: if now is older than the
// existing entry, the existing timestamp is kept.
func (s *Store) Put(source, url string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return err
	}

	stamp := now.UnixMilli()
	if existing, ok := file[source]; ok && existing.Timestamp > stamp {
		stamp = existing.Timestamp
	}

	file[source] = Entry{Source: source, URL: url, Timestamp: stamp}
	return s.save(file)
}

// Remove deletes the entry for source, reporting whether it existed.
func (s *Store) Remove(source string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return false, err
	}

	if _, ok := file[source]; !ok {
		return false, nil
	}

	delete(file, source)
	return true, s.save(file)
}

// Prune deletes entries resolved before cutoff and returns how many were dropped.
// The file is left untouched when nothing qualifies.
func (s *Store) Prune(cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return 0, err
	}

	stale := lo.Filter(file.Sources(), func(source string, _ int) bool {
		return file[source].ResolvedAt().Before(cutoff)
	})
	if len(stale) == 0 {
		return 0, nil
	}

	for _, source := range stale {
		delete(file, source)
	}
	return len(stale), s.save(file)
}

// Clear removes the backing file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return &Error{Op: "stat", Path: s.path, Err: err}
	}
	if !exists {
		return nil
	}

	if err := s.fs.Remove(s.path); err != nil {
		return &Error{Op: "remove", Path: s.path, Err: err}
	}
	return nil
}

func (s *Store) load() (File, error) {
	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return nil, &Error{Op: "stat", Path: s.path, Err: err}
	}
	if !exists {
		return make(File), nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, &Error{Op: "read", Path: s.path, Err: err}
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		if s.policy == PolicyReset {
			log.Warnf("cache file %s is corrupt, starting empty: %v", s.path, err)
			return make(File), nil
		}
		return nil, &Error{Op: "parse", Path: s.path, Err: fmt.Errorf("%w: %w", ErrCorrupt, err)}
	}

	if file == nil {
		file = make(File)
	}

	for source, entry := range file {
		entry.Source = source
		file[source] = entry
	}

	return file, nil
}

// save swaps in a fully written temp file so a crash never leaves half a store behind.
func (s *Store) save(file File) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &Error{Op: "write", Path: s.path, Err: err}
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return &Error{Op: "encode", Path: s.path, Err: err}
	}

	tmp := s.path + ".tmp"
	if err := s.fs.WriteFile(tmp, data, 0o644); err != nil {
		return &Error{Op: "write", Path: s.path, Err: err}
	}

	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return &Error{Op: "write", Path: s.path, Err: err}
	}

	log.Debugf("cache file %s rewritten with %d entries", s.path, len(file))
	return nil
}

// Sources returns the keys of file in lexical order.
func (f File) Sources() []string {
	sources := lo.Keys(f)
	slices.Sort(sources)
	return sources
}
