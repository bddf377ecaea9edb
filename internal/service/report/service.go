package report

import (
	"context"
	"strings"
	"time"

	"github.com/rrservice/service-dashboard-go/internal/config"
	"github.com/rrservice/service-dashboard-go/internal/domain/report"
	"github.com/rrservice/service-dashboard-go/internal/domain/ticket"
	"github.com/rrservice/service-dashboard-go/internal/service/ingest"
)

// statusDelivered is the status a ticket carries when the customer has
// just handed it in and no work has started yet.
const statusDelivered = "Innlevert"

const (
	shortWindowDays = 7
	longWindowDays  = 30
)

type ServiceImpl struct {
	source  ticket.Source
	builder *ingest.Builder
	grouper *StatusGrouper
	cfg     config.ReportConfig
}

func NewReportService(source ticket.Source, builder *ingest.Builder, grouper *StatusGrouper, cfg config.ReportConfig) report.Service {
	return &ServiceImpl{
		source:  source,
		builder: builder,
		grouper: grouper,
		cfg:     cfg,
	}
}

// table fetches a fresh extract and rebuilds the record table. The
// pre-filter on priority happens here so every view sees the same
// subset.
func (s *ServiceImpl) table(ctx context.Context) (ticket.Table, error) {
	extract, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	table := s.builder.BuildTable(extract)
	if s.cfg.PriorityFilter != "" {
		table = table.Filter(func(t ticket.Ticket) bool {
			return strings.EqualFold(t.Priority, s.cfg.PriorityFilter)
		})
	}
	return table, nil
}

// Repaired implements report.Service.
func (s *ServiceImpl) Repaired(ctx context.Context, ref time.Time) (*report.RepairedResponse, error) {
	table, err := s.table(ctx)
	if err != nil {
		return nil, err
	}

	day := dayOf(ref)
	repaired := table.RepairedOn(day)
	byTechnician := CountBy(repaired, technicianOf)
	topTechnician, topCount := Top(byTechnician)

	return &report.RepairedResponse{
		Date:               day.Format("2006-01-02"),
		TotalRepaired:      len(repaired),
		DistinctBrands:     DistinctKnownBrands(repaired),
		TopTechnician:      topTechnician,
		TopTechnicianCount: topCount,
		ByBrand:            CountBy(repaired, brandOf),
		ByTechnician:       byTechnician,
	}, nil
}

// Delivered implements report.Service.
func (s *ServiceImpl) Delivered(ctx context.Context, ref time.Time) (*report.DeliveredResponse, error) {
	table, err := s.table(ctx)
	if err != nil {
		return nil, err
	}

	day := dayOf(ref)
	delivered := table.Filter(func(t ticket.Ticket) bool {
		return strings.EqualFold(t.StatusText, statusDelivered)
	})

	return &report.DeliveredResponse{
		Date:           day.Format("2006-01-02"),
		TotalDelivered: len(delivered),
		DeliveredToday: len(delivered.StatusSetOn(day)),
		ByBrand:        CountBy(delivered, brandOf),
		ByStatusDate:   CountByDate(delivered, statusDateOf),
	}, nil
}

// Inhouse implements report.Service.
func (s *ServiceImpl) Inhouse(ctx context.Context, ref time.Time) (*report.InhouseResponse, error) {
	table, err := s.table(ctx)
	if err != nil {
		return nil, err
	}

	open := table.Open()
	topBrand, topBrandCount := Top(CountBy(open, brandOf))

	return &report.InhouseResponse{
		TotalInhouse:  len(open),
		TopBrand:      topBrand,
		TopBrandCount: topBrandCount,
		ByStatusGroup: CountBy(open, s.statusGroupOf),
		ByStatusDate:  CountByDate(open, statusDateOf),
	}, nil
}

// WorkedOn implements report.Service.
func (s *ServiceImpl) WorkedOn(ctx context.Context, ref time.Time) (*report.WorkedOnResponse, error) {
	table, err := s.table(ctx)
	if err != nil {
		return nil, err
	}

	day := dayOf(ref)
	worked := table.StatusSetOn(day).Filter(func(t ticket.Ticket) bool {
		return !strings.EqualFold(t.StatusText, statusDelivered)
	})

	byStatusGroup := CountBy(worked, s.statusGroupOf)
	topStatus, topStatusCount := Top(byStatusGroup)
	topTechnician, topTechCount := Top(CountBy(worked, technicianOf))

	return &report.WorkedOnResponse{
		Date:               day.Format("2006-01-02"),
		TotalWorkedOn:      len(worked),
		TopStatusGroup:     topStatus,
		TopStatusCount:     topStatusCount,
		TopTechnician:      topTechnician,
		TopTechnicianCount: topTechCount,
		ByBrand:            CountBy(worked, brandOf),
		ByStatusGroup:      byStatusGroup,
	}, nil
}

// History implements report.Service.
func (s *ServiceImpl) History(ctx context.Context, ref time.Time) (*report.HistoryResponse, error) {
	table, err := s.table(ctx)
	if err != nil {
		return nil, err
	}

	day := dayOf(ref)

	// Zero-filled so the line chart has a point for every day.
	daily := make([]report.DateCount, 0, longWindowDays)
	for _, d := range CalendarDays(day, longWindowDays) {
		daily = append(daily, report.DateCount{
			Date:  d.Format("2006-01-02"),
			Count: len(table.RepairedOn(d)),
		})
	}

	return &report.HistoryResponse{
		Date:          day.Format("2006-01-02"),
		DailyRepaired: daily,
		Last7:         s.repairedTrend(table, day, shortWindowDays),
		Last30:        s.repairedTrend(table, day, longWindowDays),
	}, nil
}

// repairedTrend compares repaired counts between the current and the
// immediately preceding business-day window of the same size.
func (s *ServiceImpl) repairedTrend(table ticket.Table, ref time.Time, days int) report.RateResult {
	current := BusinessDays(ref, days)
	previous := PreviousBusinessDays(current)
	return Trend(
		float64(len(repairedInWindow(table, current))),
		float64(len(repairedInWindow(table, previous))),
		s.cfg.RateEpsilon,
		true,
	)
}

// Leaderboard implements report.Service.
func (s *ServiceImpl) Leaderboard(ctx context.Context, ref time.Time) (*report.LeaderboardResponse, error) {
	table, err := s.table(ctx)
	if err != nil {
		return nil, err
	}

	day := dayOf(ref)
	window := BusinessDays(day, longWindowDays)
	inWindow := repairedInWindow(table, window)

	standings := make([]report.TechnicianStanding, 0)
	for _, c := range CountBy(inWindow, technicianOf) {
		standings = append(standings, report.TechnicianStanding{
			Technician: c.Category,
			Repaired:   c.Count,
			PerDay:     AveragePerPeriod(c.Count, longWindowDays),
		})
	}

	previous := repairedInWindow(table, PreviousBusinessDays(window))
	perTechPerDay := Trend(
		AveragePerTechnicianPerDay(inWindow, longWindowDays),
		AveragePerTechnicianPerDay(previous, longWindowDays),
		s.cfg.RateEpsilon,
		true,
	)

	return &report.LeaderboardResponse{
		Date:          day.Format("2006-01-02"),
		WindowDays:    longWindowDays,
		Technicians:   standings,
		PerTechPerDay: perTechPerDay,
	}, nil
}

// Brands implements report.Service.
func (s *ServiceImpl) Brands(ctx context.Context, ref time.Time) (*report.BrandsResponse, error) {
	table, err := s.table(ctx)
	if err != nil {
		return nil, err
	}

	open := table.Open()
	brands := make([]report.BrandOpenSummary, 0)
	for _, c := range CountBy(open, brandOf) {
		if c.Category == ticket.Unknown && !s.cfg.IncludeUnknownBrand {
			continue
		}
		brand := c.Category
		subset := open.Filter(func(t ticket.Ticket) bool { return t.Brand == brand })
		brands = append(brands, report.BrandOpenSummary{
			Brand:         brand,
			OpenCount:     c.Count,
			ByStatusGroup: CountBy(subset, s.statusGroupOf),
		})
	}

	return &report.BrandsResponse{Brands: brands}, nil
}

// TAT implements report.Service.
func (s *ServiceImpl) TAT(ctx context.Context, ref time.Time) (*report.TATResponse, error) {
	table, err := s.table(ctx)
	if err != nil {
		return nil, err
	}

	day := dayOf(ref)
	open := table.Open()

	// Closed-case TAT is compared across business-day windows; lower is
	// better, so upIsGood is false.
	window := BusinessDays(day, longWindowDays)
	currentMean := MeanTAT(repairedInWindow(table, window), day)
	previousMean := MeanTAT(repairedInWindow(table, PreviousBusinessDays(window)), day)
	trend := Trend(currentMean, previousMean, s.cfg.TATEpsilonDays, false)

	return &report.TATResponse{
		Date:           day.Format("2006-01-02"),
		MeanOpenDays:   MeanTAT(open, day),
		OldestOpenDays: int(MaxTAT(open, day)),
		MeanClosedDays: currentMean,
		TrendDelta:     trend.Delta,
		Direction:      trend.Direction,
		ColorHint:      trend.ColorHint,
	}, nil
}

func (s *ServiceImpl) statusGroupOf(t ticket.Ticket) string {
	return s.grouper.Group(t.StatusText)
}

func repairedInWindow(table ticket.Table, window []time.Time) ticket.Table {
	return table.Filter(func(t ticket.Ticket) bool {
		return t.RepairDate != nil && InWindow(*t.RepairDate, window)
	})
}

func brandOf(t ticket.Ticket) string { return t.Brand }

func technicianOf(t ticket.Ticket) string { return t.Technician }

func statusDateOf(t ticket.Ticket) *time.Time { return t.StatusDate }
