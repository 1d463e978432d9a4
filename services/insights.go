package services

import (
	"sort"
	"strings"
	"time"

	"recipe-charts/config"
	"recipe-charts/models"
	"recipe-charts/utils"
)

// Insights computes the derived views consumed by the chart renderers.
// Every method is a pure function over already-resolved tables; a failure
// in one aggregate never affects the others.
type Insights struct {
	logger        *utils.Logger
	topLimit      int
	histogramBins int
}

// NewInsights creates the aggregate service.
func NewInsights(cfg *config.Config, logger *utils.Logger) *Insights {
	return &Insights{
		logger:        logger,
		topLimit:      cfg.TopLimit,
		histogramBins: cfg.HistogramBins,
	}
}

// TopIngredients counts occurrences per distinct trimmed ingredient name
// across all rows (case preserved, no per-recipe deduplication), sorted
// by count descending with ties broken by first-encountered order, and
// truncated to the top limit.
func (s *Insights) TopIngredients(ings []models.Ingredient) []models.IngredientCount {
	return s.tally(ingredientNames(ings), s.topLimit)
}

func ingredientNames(ings []models.Ingredient) []string {
	names := make([]string, 0, len(ings))
	for _, ing := range ings {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// PrepTimeHistogram buckets recipe prep times into equal-width bins over
// the observed range. Rows whose prep time is absent or failed numeric
// coercion are dropped, not zero-filled.
func (s *Insights) PrepTimeHistogram(recipes []models.Recipe) models.Histogram {
	var values []float64
	for _, r := range recipes {
		if r.HasPrepTime {
			values = append(values, r.PrepTimeMin)
		}
	}

	h := models.Histogram{Observations: len(values)}
	if len(values) == 0 {
		return h
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if max == min {
		// Degenerate range: one bin holding every observation.
		h.Bins = []models.HistogramBin{{Low: min, High: max, Count: len(values)}}
		return h
	}

	width := (max - min) / float64(s.histogramBins)
	h.Bins = make([]models.HistogramBin, s.histogramBins)
	for i := range h.Bins {
		h.Bins[i].Low = min + float64(i)*width
		h.Bins[i].High = min + float64(i+1)*width
	}
	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= s.histogramBins {
			idx = s.histogramBins - 1 // max value lands in the last bin
		}
		h.Bins[idx].Count++
	}
	return h
}

// PrepVsLikes emits exactly one point per recipe row: like counts are
// left-joined onto the recipe table and missing matches fill with zero,
// as does a prep time that failed coercion. This is deliberately the
// opposite policy from the histogram's drop rule.
func (s *Insights) PrepVsLikes(recipes []models.Recipe, inters models.InteractionSet) []models.ScatterPoint {
	likes := make(map[string]int)
	for _, in := range inters.Rows {
		if in.Type == models.InteractionLike {
			likes[in.RecipeID]++
		}
	}

	points := make([]models.ScatterPoint, 0, len(recipes))
	for _, r := range recipes {
		prep := 0.0
		if r.HasPrepTime {
			prep = r.PrepTimeMin
		}
		points = append(points, models.ScatterPoint{
			RecipeID:    r.RecipeID,
			PrepTimeMin: prep,
			LikeCount:   likes[r.RecipeID],
		})
	}
	return points
}

// UsersByCountry counts users per country value, with missing countries
// collapsed into the "unknown" sentinel. All distinct values are kept.
func (s *Insights) UsersByCountry(users models.UserSet) []models.LabelCount {
	labels := make([]string, 0, len(users.Rows))
	for _, u := range users.Rows {
		if u.HasCountry {
			labels = append(labels, u.Country)
		} else {
			labels = append(labels, "unknown")
		}
	}
	return s.tallyLabels(labels, 0)
}

// TopUsers counts interactions per user, with missing user IDs collapsed
// into the "unknown" sentinel, truncated to the top limit.
func (s *Insights) TopUsers(inters models.InteractionSet) []models.LabelCount {
	labels := make([]string, 0, len(inters.Rows))
	for _, in := range inters.Rows {
		id := strings.TrimSpace(in.UserID)
		if id == "" {
			id = "unknown"
		}
		labels = append(labels, id)
	}
	return s.tallyLabels(labels, s.topLimit)
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// InteractionsPerDay parses interaction timestamps, drops rows that fail
// to parse, truncates to calendar date and counts per date ascending.
// Returns nil when no row carries a parseable timestamp.
func (s *Insights) InteractionsPerDay(inters models.InteractionSet) []models.DayCount {
	counts := make(map[time.Time]int)
	dropped := 0
	for _, in := range inters.Rows {
		ts, ok := parseTimestamp(in.CreatedAt)
		if !ok {
			dropped++
			continue
		}
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		counts[day]++
	}
	if dropped > 0 {
		s.logger.Debug("[insights] Dropped %d interactions with unparseable timestamps", dropped)
	}
	if len(counts) == 0 {
		return nil
	}

	days := make([]models.DayCount, 0, len(counts))
	for day, n := range counts {
		days = append(days, models.DayCount{Date: day, Count: n})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days
}

func parseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// tally counts occurrences preserving first-encountered order for ties.
// limit 0 means no truncation.
func (s *Insights) tally(labels []string, limit int) []models.IngredientCount {
	rows := s.tallyLabels(labels, limit)
	out := make([]models.IngredientCount, len(rows))
	for i, r := range rows {
		out[i] = models.IngredientCount{Name: r.Label, Count: r.Count}
	}
	return out
}

func (s *Insights) tallyLabels(labels []string, limit int) []models.LabelCount {
	type tallyEntry struct {
		label string
		count int
		first int
	}

	index := make(map[string]*tallyEntry)
	var entries []*tallyEntry
	for i, label := range labels {
		e, ok := index[label]
		if !ok {
			e = &tallyEntry{label: label, first: i}
			index[label] = e
			entries = append(entries, e)
		}
		e.count++
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].first < entries[j].first
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	out := make([]models.LabelCount, len(entries))
	for i, e := range entries {
		out[i] = models.LabelCount{Label: e.label, Count: e.count}
	}
	return out
}
