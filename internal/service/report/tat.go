package report

import (
	"time"

	"github.com/rrservice/service-dashboard-go/internal/domain/report"
	"github.com/rrservice/service-dashboard-go/internal/domain/ticket"
)

const hoursPerDay = 24

// TicketTAT computes one ticket's turn-around time in days: received to
// repaired for closed tickets, received to asOf for open ones (elapsed
// time so far). ok is false when the ticket has no received date or the
// data is inconsistent (repaired before received); such tickets are
// excluded from aggregation entirely, not clamped.
func TicketTAT(t ticket.Ticket, asOf time.Time) (float64, bool) {
	if t.ReceivedDate == nil {
		return 0, false
	}
	end := asOf
	if t.RepairDate != nil {
		end = *t.RepairDate
	}
	days := end.Sub(*t.ReceivedDate).Hours() / hoursPerDay
	if days < 0 {
		return 0, false
	}
	return days, true
}

// MeanTAT is the arithmetic mean of the valid turn-around times in the
// subset, 0.0 when no ticket qualifies.
func MeanTAT(tickets ticket.Table, asOf time.Time) float64 {
	sum := 0.0
	n := 0
	for _, t := range tickets {
		if days, ok := TicketTAT(t, asOf); ok {
			sum += days
			n++
		}
	}
	if n == 0 {
		return 0.0
	}
	return sum / float64(n)
}

// MaxTAT is the largest valid turn-around time in the subset, 0.0 when
// no ticket qualifies. Over the open backlog this is the age of the
// oldest open ticket.
func MaxTAT(tickets ticket.Table, asOf time.Time) float64 {
	max := 0.0
	for _, t := range tickets {
		if days, ok := TicketTAT(t, asOf); ok && days > max {
			max = days
		}
	}
	return max
}

// Trend compares a current value against the previous window's value.
// upIsGood selects the color convention: true for throughput metrics,
// false for turn-around time (lower is better). Deltas within epsilon
// of zero are reported as flat.
func Trend(current, previous, epsilon float64, upIsGood bool) report.RateResult {
	delta := current - previous

	direction := report.DirectionFlat
	color := report.ColorNeutral
	switch {
	case delta > epsilon:
		direction = report.DirectionUp
		color = colorFor(upIsGood)
	case delta < -epsilon:
		direction = report.DirectionDown
		color = colorFor(!upIsGood)
	}

	return report.RateResult{
		ValueNow:      current,
		PreviousValue: previous,
		Delta:         delta,
		Direction:     direction,
		ColorHint:     color,
	}
}

func colorFor(good bool) report.ColorHint {
	if good {
		return report.ColorFavorable
	}
	return report.ColorUnfavorable
}
