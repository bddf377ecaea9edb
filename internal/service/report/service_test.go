package report

import (
	"context"
	"testing"
	"time"

	"github.com/rrservice/service-dashboard-go/internal/config"
	"github.com/rrservice/service-dashboard-go/internal/domain/report"
	"github.com/rrservice/service-dashboard-go/internal/domain/ticket"
	"github.com/rrservice/service-dashboard-go/internal/service/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	extract ticket.Extract
	err     error
}

func (f *fakeSource) Fetch(ctx context.Context) (ticket.Extract, error) {
	if f.err != nil {
		return ticket.Extract{}, f.err
	}
	return f.extract, nil
}

// refDay is a Friday so business-day windows end on it directly.
var refDay = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

func testExtract() ticket.Extract {
	return ticket.Extract{
		Header: config.DefaultExpectedColumns,
		Rows: [][]string{
			// open, just handed in, blank technician
			{"S-1", "01.03.2024", "Innlevert", "", "27.02.2024", "Acme", "", ""},
			// repaired on the reference day by Kari
			{"S-2", "01.03.2024", "Reparert", "01.03.2024", "20.02.2024", "Globex", "Kari", ""},
			{"S-3", "01.03.2024", "Reparert", "01.03.2024", "25.02.2024", "Acme", "Kari", ""},
			// open, waiting on an external party
			{"S-4", "15.02.2024", "Venter på ekstern part: hovedkort", "", "10.02.2024", "Acme", "Ola", ""},
			// open, unknown brand, no received date
			{"S-5", "20.02.2024", "Innlevert", "", "", "nan", "", ""},
		},
	}
}

func newTestService(t *testing.T, src ticket.Source, cfg config.ReportConfig) report.Service {
	t.Helper()
	if len(cfg.ExpectedColumns) == 0 {
		cfg.ExpectedColumns = config.DefaultExpectedColumns
	}
	if cfg.StatusGroupPrefix == "" {
		cfg.StatusGroupPrefix = "Venter på ekstern part"
	}
	if cfg.RateEpsilon == 0 {
		cfg.RateEpsilon = 0.05
	}
	if cfg.TATEpsilonDays == 0 {
		cfg.TATEpsilonDays = 0.2
	}
	builder := ingest.NewBuilder(cfg.ExpectedColumns)
	grouper := NewStatusGrouper(cfg.StatusGroupPrefix)
	return NewReportService(src, builder, grouper, cfg)
}

func TestReportService_Inhouse(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, &fakeSource{extract: testExtract()}, config.ReportConfig{})

	got, err := svc.Inhouse(context.Background(), refDay)

	require.NoError(t, err)
	// Open iff no repair date: S-1, S-4, S-5.
	assert.Equal(t, 3, got.TotalInhouse)
	assert.Equal(t, "Acme", got.TopBrand)
	assert.Equal(t, 2, got.TopBrandCount)

	// The external-party reason suffix is folded away.
	require.Len(t, got.ByStatusGroup, 2)
	assert.Equal(t, report.CategoryCount{Category: "Innlevert", Count: 2}, got.ByStatusGroup[0])
	assert.Equal(t, report.CategoryCount{Category: "Venter på ekstern part", Count: 1}, got.ByStatusGroup[1])
}

func TestReportService_Repaired(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, &fakeSource{extract: testExtract()}, config.ReportConfig{})

	got, err := svc.Repaired(context.Background(), refDay)

	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", got.Date)
	assert.Equal(t, 2, got.TotalRepaired)
	assert.Equal(t, 2, got.DistinctBrands)
	assert.Equal(t, "Kari", got.TopTechnician)
	assert.Equal(t, 2, got.TopTechnicianCount)
	require.Len(t, got.ByTechnician, 1)
	assert.Equal(t, report.CategoryCount{Category: "Kari", Count: 2}, got.ByTechnician[0])
}

func TestReportService_Delivered(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, &fakeSource{extract: testExtract()}, config.ReportConfig{})

	got, err := svc.Delivered(context.Background(), refDay)

	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalDelivered) // S-1 and S-5 carry "Innlevert"
	assert.Equal(t, 1, got.DeliveredToday)
}

func TestReportService_WorkedOn(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, &fakeSource{extract: testExtract()}, config.ReportConfig{})

	got, err := svc.WorkedOn(context.Background(), refDay)

	require.NoError(t, err)
	// Status set on the reference day, excluding fresh deliveries.
	assert.Equal(t, 2, got.TotalWorkedOn)
	assert.Equal(t, "Reparert", got.TopStatusGroup)
	assert.Equal(t, "Kari", got.TopTechnician)
	assert.Equal(t, 2, got.TopTechnicianCount)
}

func TestReportService_History(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, &fakeSource{extract: testExtract()}, config.ReportConfig{})

	got, err := svc.History(context.Background(), refDay)

	require.NoError(t, err)
	require.Len(t, got.DailyRepaired, 30)
	assert.Equal(t, "2024-03-01", got.DailyRepaired[29].Date)
	assert.Equal(t, 2, got.DailyRepaired[29].Count)

	// Two repairs now, none in the preceding windows.
	assert.Equal(t, report.DirectionUp, got.Last7.Direction)
	assert.Equal(t, report.ColorFavorable, got.Last7.ColorHint)
	assert.Equal(t, 2.0, got.Last30.ValueNow)
	assert.Equal(t, 0.0, got.Last30.PreviousValue)
}

func TestReportService_LeaderboardThroughputTrend(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, &fakeSource{extract: testExtract()}, config.ReportConfig{})

	got, err := svc.Leaderboard(context.Background(), refDay)

	require.NoError(t, err)
	require.Len(t, got.Technicians, 1)
	assert.Equal(t, "Kari", got.Technicians[0].Technician)
	assert.Equal(t, 2, got.Technicians[0].Repaired)
	assert.InDelta(t, 2.0/30.0, got.Technicians[0].PerDay, 1e-9)

	// Current window has repairs, the previous one has none: the
	// per-technician-per-day rate trends up and up is good news.
	assert.Greater(t, got.PerTechPerDay.ValueNow, 0.0)
	assert.Equal(t, 0.0, got.PerTechPerDay.PreviousValue)
	assert.Greater(t, got.PerTechPerDay.Delta, 0.0)
	assert.Equal(t, report.DirectionUp, got.PerTechPerDay.Direction)
	assert.Equal(t, report.ColorFavorable, got.PerTechPerDay.ColorHint)
}

func TestReportService_BrandsUnknownPolicy(t *testing.T) {
	t.Parallel()
	src := &fakeSource{extract: testExtract()}

	// Default policy: the Unknown bucket gets no tab of its own.
	svc := newTestService(t, src, config.ReportConfig{})
	got, err := svc.Brands(context.Background(), refDay)
	require.NoError(t, err)
	require.Len(t, got.Brands, 1)
	assert.Equal(t, "Acme", got.Brands[0].Brand)
	assert.Equal(t, 2, got.Brands[0].OpenCount)

	// Flag flipped: Unknown is listed like any other brand.
	svc = newTestService(t, src, config.ReportConfig{IncludeUnknownBrand: true})
	got, err = svc.Brands(context.Background(), refDay)
	require.NoError(t, err)
	require.Len(t, got.Brands, 2)
	assert.Equal(t, ticket.Unknown, got.Brands[1].Brand)
}

func TestReportService_TAT(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, &fakeSource{extract: testExtract()}, config.ReportConfig{})

	got, err := svc.TAT(context.Background(), refDay)

	require.NoError(t, err)
	// Open TAT: S-1 is 3 days old, S-4 is 20; S-5 has no received date.
	assert.InDelta(t, 11.5, got.MeanOpenDays, 1e-9)
	assert.Equal(t, 20, got.OldestOpenDays)
	// Closed TAT this window: S-2 took 10 days, S-3 took 5.
	assert.InDelta(t, 7.5, got.MeanClosedDays, 1e-9)
	// Rising TAT against an empty previous window; lower is better.
	assert.Equal(t, report.DirectionUp, got.Direction)
	assert.Equal(t, report.ColorUnfavorable, got.ColorHint)
}

func TestReportService_PriorityFilter(t *testing.T) {
	t.Parallel()
	extract := testExtract()
	extract.Rows[0][7] = "SPS" // only S-1 carries the priority tag
	svc := newTestService(t, &fakeSource{extract: extract}, config.ReportConfig{PriorityFilter: "SPS"})

	got, err := svc.Inhouse(context.Background(), refDay)

	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalInhouse)
}

func TestReportService_SourceFailurePropagates(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, &fakeSource{err: ticket.ErrSourceUnavailable}, config.ReportConfig{})

	_, err := svc.Inhouse(context.Background(), refDay)

	assert.ErrorIs(t, err, ticket.ErrSourceUnavailable)
}
