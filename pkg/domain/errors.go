package domain

import "errors"

// ErrContainerMismatch is returned when a candidate node cannot be routed to
// the container it requires on the current cursor target.
var ErrContainerMismatch = errors.New("container mismatch")

// ErrInvalidCheckpoint is returned when a checkpoint token is presented to a
// card that did not mint it.
var ErrInvalidCheckpoint = errors.New("invalid checkpoint")

// ErrTranslationFailure is returned when the translation collaborator fails
// or answers with a batch of the wrong length.
var ErrTranslationFailure = errors.New("translation failure")
