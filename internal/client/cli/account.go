package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/client/tokens"
)

// Profile prints the account record and content counts.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.account.Profile(ctx)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(p))
	for k, v := range p {
		switch v.(type) {
		case map[string]any, []any:
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(a.out, "%s: %v\n", k, p[k])
	}

	st, err := a.account.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Folders: %d, notes: %d\n", st.Folders, st.Notes)
	return nil
}

// Status shows who is signed in and when the access token runs out. The
// token is read without verifying its signature.
func (a *App) Status(_ context.Context) error {
	u := a.session.User()
	if u == nil {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}
	fmt.Fprintf(a.out, "Signed in as %s\n", u.Username)

	info, err := tokens.Inspect(a.session.AccessToken())
	if err != nil {
		fmt.Fprintln(a.out, "Access token expiry unknown")
		return nil
	}

	now := a.now()
	if info.Expired(now) {
		fmt.Fprintf(a.out, "Access token expired at %s, it is renewed on the next request\n",
			info.ExpiresAt.Local().Format(time.DateTime))
		return nil
	}
	fmt.Fprintf(a.out, "Access token valid until %s (%s left)\n",
		info.ExpiresAt.Local().Format(time.DateTime), info.Remaining(now).Round(time.Second))
	return nil
}
