package store

import (
	"errors"
	"fmt"
)

// ErrCorrupt marks a cache file that exists but cannot be parsed.
var ErrCorrupt = errors.New("cache file is corrupt")

// Error is returned for every failure to read, parse or write the cache file.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cache storage: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
