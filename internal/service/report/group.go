package report

import "strings"

// StatusGrouper folds free-text statuses into display groups. The one
// rule the workshop needs: every "waiting on external party: <reason>"
// variant collapses into a single group named by the prefix itself, so
// the reason suffix never fragments the breakdown charts.
type StatusGrouper struct {
	prefix string
}

func NewStatusGrouper(prefix string) *StatusGrouper {
	return &StatusGrouper{prefix: prefix}
}

// Group maps a cleaned status to its display group. Statuses beginning
// with the configured prefix (case-insensitive) map to the canonical
// prefix; everything else passes through unchanged. Every view must use
// this same function for status breakdowns.
func (g *StatusGrouper) Group(status string) string {
	if len(status) >= len(g.prefix) && strings.EqualFold(status[:len(g.prefix)], g.prefix) {
		return g.prefix
	}
	return status
}
