package report

import (
	"context"
	"time"
)

// Service composes the dashboard views for a reference date. Every method
// recomputes from a fresh extract (subject to the source's own cache); the
// only errors it can return come from the fetch path.
type Service interface {
	Repaired(ctx context.Context, ref time.Time) (*RepairedResponse, error)
	Delivered(ctx context.Context, ref time.Time) (*DeliveredResponse, error)
	Inhouse(ctx context.Context, ref time.Time) (*InhouseResponse, error)
	WorkedOn(ctx context.Context, ref time.Time) (*WorkedOnResponse, error)
	History(ctx context.Context, ref time.Time) (*HistoryResponse, error)
	Leaderboard(ctx context.Context, ref time.Time) (*LeaderboardResponse, error)
	Brands(ctx context.Context, ref time.Time) (*BrandsResponse, error)
	TAT(ctx context.Context, ref time.Time) (*TATResponse, error)
}
