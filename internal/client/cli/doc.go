// Package cli provides the interactive storedash command-line client.
//
// It wires configuration, the local session store, the store API client,
// and an interactive REPL around the paginated product catalog. Typical
// flow: check for a stored session on startup, prompt for credentials if
// none, then execute user commands against the dashboard.
//
// Key features:
//   - Login / Logout (with a y/N confirmation before logging out)
//   - List / More: incremental catalog paging with a load-more guard
//   - Refresh: refetch from the first page, discarding accumulated items
//   - Stats: aggregate over the currently loaded products
//   - Show: details for one loaded product
//   - Profile: the signed-in account
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
