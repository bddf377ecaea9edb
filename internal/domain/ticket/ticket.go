package ticket

import "time"

// Unknown is the canonical placeholder injected for blank or null-like
// text cells (brand, technician, service number).
const Unknown = "Unknown"

// Ticket is one service/repair case as extracted from the worksheet.
// Date fields hold calendar dates (midnight UTC); a nil date means the
// source cell was missing or unparseable.
type Ticket struct {
	ServiceNumber string     `json:"service_number"`
	StatusText    string     `json:"status_text"`
	StatusDate    *time.Time `json:"status_date,omitempty"`
	RepairDate    *time.Time `json:"repair_date,omitempty"`
	ReceivedDate  *time.Time `json:"received_date,omitempty"`
	Brand         string     `json:"brand"`
	Technician    string     `json:"technician"`
	Priority      string     `json:"priority"`
}

// Open reports whether the ticket is still in-house. A missing repair
// date is the sole criterion; no other field overrides it.
func (t Ticket) Open() bool {
	return t.RepairDate == nil
}

// Table is the cleaned record table shared by every view. It is treated
// as immutable once built: filters return fresh slices.
type Table []Ticket

// Filter returns the tickets satisfying keep, in original order.
func (tb Table) Filter(keep func(Ticket) bool) Table {
	out := make(Table, 0, len(tb))
	for _, t := range tb {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Open returns the in-house subset of the table.
func (tb Table) Open() Table {
	return tb.Filter(Ticket.Open)
}

// RepairedOn returns tickets whose repair was completed on the given day.
func (tb Table) RepairedOn(day time.Time) Table {
	return tb.Filter(func(t Ticket) bool {
		return t.RepairDate != nil && sameDay(*t.RepairDate, day)
	})
}

// StatusSetOn returns tickets whose current status was set on the given day.
func (tb Table) StatusSetOn(day time.Time) Table {
	return tb.Filter(func(t Ticket) bool {
		return t.StatusDate != nil && sameDay(*t.StatusDate, day)
	})
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
