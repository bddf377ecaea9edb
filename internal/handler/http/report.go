package http

import (
	"context"
	"net/http"
	"time"

	"github.com/rrservice/service-dashboard-go/internal/domain/report"
	"github.com/rrservice/service-dashboard-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Repaired returns the repaired-on-date view
	Repaired(w http.ResponseWriter, r *http.Request)
	// Delivered returns the delivered-in ("Innlevert") view
	Delivered(w http.ResponseWriter, r *http.Request)
	// Inhouse returns the open backlog view
	Inhouse(w http.ResponseWriter, r *http.Request)
	// WorkedOn returns the worked-on-date view
	WorkedOn(w http.ResponseWriter, r *http.Request)
	// History returns the repair throughput history view
	History(w http.ResponseWriter, r *http.Request)
	// Leaderboard returns the technician leaderboard view
	Leaderboard(w http.ResponseWriter, r *http.Request)
	// Brands returns the per-brand open work view
	Brands(w http.ResponseWriter, r *http.Request)
	// TAT returns the turn-around-time summary
	TAT(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
	location      *time.Location
}

func NewReportHandler(reportService report.Service, location *time.Location) ReportHandler {
	return &reportHandlerImpl{reportService: reportService, location: location}
}

// refDate resolves the ?date=YYYY-MM-DD selector. Missing means today;
// future dates are clamped to today so a view can never run ahead of the
// data. ok=false means the parameter was malformed and a response was
// already written.
func (h *reportHandlerImpl) refDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	today := time.Now().In(h.location)

	raw := r.URL.Query().Get("date")
	if raw == "" {
		return today, true
	}

	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", map[string]string{"date": raw})
		return time.Time{}, false
	}
	if parsed.After(today) {
		return today, true
	}
	return parsed, true
}

func (h *reportHandlerImpl) serve(w http.ResponseWriter, r *http.Request, view func(context.Context, time.Time) (interface{}, error)) {
	ref, ok := h.refDate(w, r)
	if !ok {
		return
	}

	result, err := view(r.Context(), ref)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Repaired handles GET /views/repaired
func (h *reportHandlerImpl) Repaired(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context, ref time.Time) (interface{}, error) {
		return h.reportService.Repaired(ctx, ref)
	})
}

// Delivered handles GET /views/delivered
func (h *reportHandlerImpl) Delivered(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context, ref time.Time) (interface{}, error) {
		return h.reportService.Delivered(ctx, ref)
	})
}

// Inhouse handles GET /views/inhouse
func (h *reportHandlerImpl) Inhouse(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context, ref time.Time) (interface{}, error) {
		return h.reportService.Inhouse(ctx, ref)
	})
}

// WorkedOn handles GET /views/worked-on
func (h *reportHandlerImpl) WorkedOn(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context, ref time.Time) (interface{}, error) {
		return h.reportService.WorkedOn(ctx, ref)
	})
}

// History handles GET /views/history
func (h *reportHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context, ref time.Time) (interface{}, error) {
		return h.reportService.History(ctx, ref)
	})
}

// Leaderboard handles GET /views/leaderboard
func (h *reportHandlerImpl) Leaderboard(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context, ref time.Time) (interface{}, error) {
		return h.reportService.Leaderboard(ctx, ref)
	})
}

// Brands handles GET /views/brands
func (h *reportHandlerImpl) Brands(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context, ref time.Time) (interface{}, error) {
		return h.reportService.Brands(ctx, ref)
	})
}

// TAT handles GET /views/tat
func (h *reportHandlerImpl) TAT(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context, ref time.Time) (interface{}, error) {
		return h.reportService.TAT(ctx, ref)
	})
}
