// Package models defines the core domain records for evenshare.
//
// # Records
//
//   - User: a registered account. The credential hash never crosses the
//     storage/auth boundary; it is excluded from JSON serialization.
//   - Friend: a directed relationship owned by one user. Only the owner can
//     see or mutate it.
//   - Event: a shared expense with an embedded, ordered list of Participants.
//     Participants are not independently addressable; they are always read and
//     written as part of their Event.
//
// # Partial updates
//
// Mutations that touch a subset of fields go through explicit patch structs
// (UserPatch, EventPatch) whose fields are all pointers. A nil field means
// "leave unchanged", never "reset to zero". Stores apply patches field by
// field under their own lock, atomically within one call.
package models
