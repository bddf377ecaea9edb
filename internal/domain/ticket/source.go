package ticket

import "context"

// Extract is the raw tabular extract delivered by the source: one header
// row plus data rows of string cells. Rows may be shorter than the
// header; missing cells are treated as absent.
type Extract struct {
	Header []string
	Rows   [][]string
}

// Source fetches the raw extract. Implementations own transport, retry
// and caching; the derivation layer never fetches on its own.
type Source interface {
	Fetch(ctx context.Context) (Extract, error)
}
