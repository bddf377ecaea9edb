package report

import (
	"sort"
	"time"

	"github.com/rrservice/service-dashboard-go/internal/domain/report"
	"github.com/rrservice/service-dashboard-go/internal/domain/ticket"
)

// CountBy groups tickets by the given dimension and returns (category,
// count) pairs in descending count order. Ties keep first-encountered
// category order, which keeps chart ordering stable between refreshes.
// An empty input yields an empty breakdown, never an error.
func CountBy(tickets ticket.Table, key func(ticket.Ticket) string) []report.CategoryCount {
	counts := map[string]int{}
	order := map[string]int{}
	for _, t := range tickets {
		k := key(t)
		if _, seen := counts[k]; !seen {
			order[k] = len(order)
		}
		counts[k]++
	}

	out := make([]report.CategoryCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, report.CategoryCount{Category: k, Count: n})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return order[out[i].Category] < order[out[j].Category]
	})
	return out
}

// CountByDate groups tickets by a date dimension in ascending
// chronological order. Tickets for which the dimension is missing are
// skipped.
func CountByDate(tickets ticket.Table, key func(ticket.Ticket) *time.Time) []report.DateCount {
	counts := map[string]int{}
	for _, t := range tickets {
		d := key(t)
		if d == nil {
			continue
		}
		counts[d.Format("2006-01-02")]++
	}

	out := make([]report.DateCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, report.DateCount{Date: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Top returns the leading category of a breakdown, or ("-", 0) when the
// breakdown is empty. "-" matches what the cards render for no data.
func Top(breakdown []report.CategoryCount) (string, int) {
	if len(breakdown) == 0 {
		return "-", 0
	}
	return breakdown[0].Category, breakdown[0].Count
}

// AveragePerPeriod divides a count over a period length. Callers
// guarantee periodLen > 0.
func AveragePerPeriod(count int, periodLen int) float64 {
	return float64(count) / float64(periodLen)
}

// AveragePerTechnicianPerDay computes tickets per active technician per
// day over a window. The max(...,1) guard makes an empty window yield
// 0.0 instead of a division fault.
func AveragePerTechnicianPerDay(tickets ticket.Table, windowDays int) float64 {
	techs := map[string]struct{}{}
	for _, t := range tickets {
		techs[t.Technician] = struct{}{}
	}
	n := len(techs)
	if n < 1 {
		n = 1
	}
	return float64(len(tickets)) / (float64(n) * float64(windowDays))
}

// DistinctKnownBrands counts distinct brands, excluding the Unknown
// placeholder.
func DistinctKnownBrands(tickets ticket.Table) int {
	brands := map[string]struct{}{}
	for _, t := range tickets {
		if t.Brand == ticket.Unknown {
			continue
		}
		brands[t.Brand] = struct{}{}
	}
	return len(brands)
}
