// Package cli provides the interactive notekeeper command-line client.
//
// It wires configuration, the local session store, the API client and the
// session manager, restores any saved session, and then runs a REPL. Every
// command that talks to the backend goes through the session manager, so an
// expired access token is renewed without the user noticing.
//
// Commands:
//   - signup, login, logout
//   - verify, resend, forgot, reset
//   - folders, mkfolder, renamefolder, rmfolder
//   - notes, newnote, show, edit, rmnote
//   - profile, status
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
