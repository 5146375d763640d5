package vterm

import "errors"

// ErrMissingAllocator is returned by New when no Allocator is supplied and
// the caller explicitly opted out of DefaultAllocator by passing nil
// through WithAllocator(nil). This is the single Configuration Error the
// core recognizes (spec.md §7).
var ErrMissingAllocator = errors.New("vterm: no cell buffer allocator configured")
