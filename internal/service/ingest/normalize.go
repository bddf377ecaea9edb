package ingest

import "strings"

// Characters that show up in human-maintained sheet headers and cells:
// BOM, zero-width characters, and the no-break space family.
var invisibleReplacer = strings.NewReplacer(
	"\uFEFF", "",
	"​", "",
	"‌", "",
	"‍", "",
	" ", " ",
	" ", " ",
	" ", " ",
)

// NormalizeHeader cleans one raw column header: invisible characters
// removed, internal whitespace runs collapsed to single spaces, ends
// trimmed. Case is preserved; matching is case-insensitive downstream.
func NormalizeHeader(raw string) string {
	return strings.Join(strings.Fields(invisibleReplacer.Replace(raw)), " ")
}

// MapColumns maps each expected canonical column name onto the index of
// the first source header matching it case-insensitively after
// normalization, or -1 when the column is absent. An absent column is
// synthesized as all-missing by the table builder, never an error. When
// two source headers normalize to the same name, the first one wins.
func MapColumns(header []string, expected []string) []int {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = NormalizeHeader(h)
	}

	indexes := make([]int, len(expected))
	for i, want := range expected {
		indexes[i] = -1
		wantNorm := NormalizeHeader(want)
		for j, have := range normalized {
			if strings.EqualFold(have, wantNorm) {
				indexes[i] = j
				break
			}
		}
	}
	return indexes
}
