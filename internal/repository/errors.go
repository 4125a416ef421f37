// Package repository reads and rewrites the store's JSON collections.  Each
// repository loads the full collection, applies the change in memory and
// flushes the whole array back, which keeps the single-writer store
// consistent without row-level operations.  Sentinel errors defined here let
// handlers map failure scenarios to HTTP status codes.
package repository

import "errors"

// ErrEmailExists is returned when registering an email that is already
// present in the user collection.  Handlers translate it into HTTP 409.
var ErrEmailExists = errors.New("email already registered")

// ErrUserNotFound is returned when a login email or user id has no match.
// Handlers translate it into HTTP 401 or 404 depending on the operation.
var ErrUserNotFound = errors.New("user not found")

// ErrNotFound is returned by catalog lookups against an unknown id.
var ErrNotFound = errors.New("not found")
