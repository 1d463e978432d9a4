package models

import "time"

// IngredientCount is one row of the top-ingredients aggregate.
type IngredientCount struct {
	Name  string
	Count int
}

// HistogramBin is one equal-width bucket of the prep-time distribution.
// Low is inclusive; High is exclusive except for the last bin.
type HistogramBin struct {
	Low   float64
	High  float64
	Count int
}

// Histogram holds the prep-time distribution over rows whose prep time
// coerced to a number.
type Histogram struct {
	Bins         []HistogramBin
	Observations int
}

// ScatterPoint is one recipe's position in the prep-time-vs-likes view.
// Every recipe row yields exactly one point; recipes with no like
// interactions have LikeCount 0.
type ScatterPoint struct {
	RecipeID    string
	PrepTimeMin float64
	LikeCount   int
}

// LabelCount is a generic label/count pair used by the users-by-country
// and top-users aggregates.
type LabelCount struct {
	Label string
	Count int
}

// DayCount is one calendar day of the interactions-per-day aggregate.
type DayCount struct {
	Date  time.Time
	Count int
}

// RunReport records what a pipeline run actually produced, for the
// plain-text README artifact.
type RunReport struct {
	Synthetic    bool
	RecipeCharts []string
	UserCharts   []string
}
