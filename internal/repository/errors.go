// Package repository defines error types that are reused across multiple
// repositories. These sentinel values let handlers and services map storage
// failures to the right HTTP status without inspecting driver errors: a
// duplicate key becomes a 400, a missing row a 404.
package repository

import "errors"

// ErrUsernameExists is returned when inserting a user whose username is
// already taken.  The unique index on users.username is the authority; the
// pre-check in the handler only provides a friendlier fast path.
var ErrUsernameExists = errors.New("username already exists")

// ErrTitleExists is returned when inserting a game whose title collides
// with an existing one.  Titles are unique across all games, not per owner.
var ErrTitleExists = errors.New("title already exists")

// ErrNotFound is returned when a user or game id does not resolve to a row.
var ErrNotFound = errors.New("not found")
