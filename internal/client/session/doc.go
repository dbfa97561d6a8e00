// Package session owns the signed-in identity of the client and is the only
// way feature code makes authenticated calls.
//
// # Lifecycle
//
// A Manager starts in StateInitializing. Restore reads the persisted record
// once and moves to StateAuthenticated or StateUnauthenticated; the manager
// never returns to StateInitializing. SignIn moves to StateAuthenticated,
// SignOut and a failed token refresh move back to StateUnauthenticated.
//
// # Authenticated calls
//
// Do runs an Operation with the current access token. When the reply has
// status 401 the manager refreshes the access token once and, if that
// worked, runs the operation a second and final time. Any other status,
// including network failures, is returned as is. There is no retry loop and
// no backoff.
//
// # Concurrency
//
// Field access is guarded, but operations are not serialized: two Do calls
// that hit 401 together may both refresh, and the last write to the stored
// record wins. Callers are expected to drive the manager one action at a
// time.
package session
