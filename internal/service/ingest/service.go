package ingest

import (
	"github.com/rrservice/service-dashboard-go/internal/domain/ticket"
)

// Positions of the canonical columns in the expected-columns list. A
// configured override changes the source spellings, not the order.
const (
	colServiceNumber = iota
	colStatusDate
	colStatus
	colRepairDate
	colReceivedDate
	colBrand
	colTechnician
	colPriority
	columnCount
)

// Builder turns a raw extract into the cleaned record table. It is a
// pure transformation: dirty cells degrade to sentinels, never errors.
type Builder struct {
	expected []string
}

func NewBuilder(expectedColumns []string) *Builder {
	return &Builder{expected: expectedColumns}
}

// BuildTable runs the full pipeline: header mapping, per-field cleaning,
// one Ticket per data row. Rows shorter than the header contribute absent
// cells for the trailing columns.
func (b *Builder) BuildTable(ex ticket.Extract) ticket.Table {
	idx := MapColumns(ex.Header, b.expected)

	table := make(ticket.Table, 0, len(ex.Rows))
	for _, row := range ex.Rows {
		cell := func(col int) string {
			if col >= len(idx) {
				return ""
			}
			src := idx[col]
			if src < 0 || src >= len(row) {
				return ""
			}
			return row[src]
		}

		table = append(table, ticket.Ticket{
			ServiceNumber: CleanText(cell(colServiceNumber), ticket.Unknown),
			StatusText:    CleanText(cell(colStatus), ""),
			StatusDate:    CleanDate(cell(colStatusDate)),
			RepairDate:    CleanDate(cell(colRepairDate)),
			ReceivedDate:  CleanDate(cell(colReceivedDate)),
			Brand:         CleanText(cell(colBrand), ticket.Unknown),
			Technician:    CleanText(cell(colTechnician), ticket.Unknown),
			Priority:      CleanText(cell(colPriority), ""),
		})
	}
	return table
}
