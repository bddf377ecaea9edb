package report

// Direction of a trend delta relative to the comparison window.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// ColorHint tells the presentation layer whether a movement is good news.
type ColorHint string

const (
	ColorFavorable   ColorHint = "favorable"
	ColorUnfavorable ColorHint = "unfavorable"
	ColorNeutral     ColorHint = "neutral"
)

// CategoryCount is one bar/slice of a breakdown chart.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// DateCount is one point of a chronological breakdown.
type DateCount struct {
	Date  string `json:"date"` // Format: "YYYY-MM-DD"
	Count int    `json:"count"`
}

// RateResult is a KPI value compared against the previous window.
type RateResult struct {
	ValueNow      float64   `json:"value_now"`
	PreviousValue float64   `json:"previous_value"`
	Delta         float64   `json:"delta"`
	Direction     Direction `json:"direction"`
	ColorHint     ColorHint `json:"color_hint"`
}

// ========== REPAIRED ("Reparert") ==========

// RepairedResponse summarizes the units repaired on the selected day
type RepairedResponse struct {
	Date               string          `json:"date"`
	TotalRepaired      int             `json:"total_repaired"`
	DistinctBrands     int             `json:"distinct_brands"` // known brands only
	TopTechnician      string          `json:"top_technician"`
	TopTechnicianCount int             `json:"top_technician_count"`
	ByBrand            []CategoryCount `json:"by_brand"`
	ByTechnician       []CategoryCount `json:"by_technician"`
}

// ========== DELIVERED ("Innlevert") ==========

// DeliveredResponse summarizes units handed in by customers
type DeliveredResponse struct {
	Date           string          `json:"date"`
	TotalDelivered int             `json:"total_delivered"` // all time
	DeliveredToday int             `json:"delivered_today"` // on the selected day
	ByBrand        []CategoryCount `json:"by_brand"`
	ByStatusDate   []DateCount     `json:"by_status_date"`
}

// ========== INHOUSE BACKLOG ==========

// InhouseResponse summarizes the open backlog (no repair date recorded)
type InhouseResponse struct {
	TotalInhouse  int             `json:"total_inhouse"`
	TopBrand      string          `json:"top_brand"`
	TopBrandCount int             `json:"top_brand_count"`
	ByStatusGroup []CategoryCount `json:"by_status_group"`
	ByStatusDate  []DateCount     `json:"by_status_date"`
}

// ========== WORKED ON ("Arbeidet på") ==========

// WorkedOnResponse summarizes units whose status moved on the selected day
type WorkedOnResponse struct {
	Date               string          `json:"date"`
	TotalWorkedOn      int             `json:"total_worked_on"`
	TopStatusGroup     string          `json:"top_status_group"`
	TopStatusCount     int             `json:"top_status_count"`
	TopTechnician      string          `json:"top_technician"`
	TopTechnicianCount int             `json:"top_technician_count"`
	ByBrand            []CategoryCount `json:"by_brand"`
	ByStatusGroup      []CategoryCount `json:"by_status_group"`
}

// ========== HISTORY ==========

// HistoryResponse is the throughput history view: repaired counts per day
// over the trailing month plus rolling business-day totals with trends.
type HistoryResponse struct {
	Date          string      `json:"date"`
	DailyRepaired []DateCount `json:"daily_repaired"` // trailing 30 calendar days
	Last7         RateResult  `json:"last_7_business_days"`
	Last30        RateResult  `json:"last_30_business_days"`
}

// ========== TECHNICIAN LEADERBOARD ==========

// TechnicianStanding is one row of the leaderboard.
type TechnicianStanding struct {
	Technician string  `json:"technician"`
	Repaired   int     `json:"repaired"`
	PerDay     float64 `json:"per_day"`
}

// LeaderboardResponse ranks technicians by repairs over the rolling window
type LeaderboardResponse struct {
	Date          string               `json:"date"`
	WindowDays    int                  `json:"window_days"` // business days
	Technicians   []TechnicianStanding `json:"technicians"`
	PerTechPerDay RateResult           `json:"per_technician_per_day"`
}

// ========== PER-BRAND CUSTOMER VIEW ==========

// BrandOpenSummary is the open backlog of one brand.
type BrandOpenSummary struct {
	Brand         string          `json:"brand"`
	OpenCount     int             `json:"open_count"`
	ByStatusGroup []CategoryCount `json:"by_status_group"`
}

// BrandsResponse lists open work per brand.
type BrandsResponse struct {
	Brands []BrandOpenSummary `json:"brands"`
}

// ========== TURN-AROUND TIME ==========

// TATResponse summarizes turn-around time across the workshop.
type TATResponse struct {
	Date           string    `json:"date"`
	MeanOpenDays   float64   `json:"mean_open_days"`
	OldestOpenDays int       `json:"oldest_open_days"`
	MeanClosedDays float64   `json:"mean_closed_days"` // repaired in current window
	TrendDelta     float64   `json:"trend_delta"`
	Direction      Direction `json:"direction"`
	ColorHint      ColorHint `json:"color_hint"`
}
