package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"recipe-charts/charts"
	"recipe-charts/config"
	"recipe-charts/loader"
	"recipe-charts/models"
	"recipe-charts/storage"
	"recipe-charts/utils"
)

// Pipeline wires resolution, the batch fallback policy, aggregation and
// rendering into one run. Both historical variants of the chart
// generator collapse into this single parametrized path; the optional
// user analytics are a configuration toggle, not a separate pipeline.
type Pipeline struct {
	cfg      *config.Config
	logger   *utils.Logger
	resolver *loader.Resolver
	synth    *Synthesizer
	insights *Insights
	renderer *charts.Renderer
	preview  storage.PreviewWriter
	report   storage.ReportWriter
}

// NewPipeline creates a ready-to-run Pipeline.
func NewPipeline(
	cfg *config.Config,
	logger *utils.Logger,
	resolver *loader.Resolver,
	synth *Synthesizer,
	insights *Insights,
	renderer *charts.Renderer,
	preview storage.PreviewWriter,
	report storage.ReportWriter,
) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		logger:   logger,
		resolver: resolver,
		synth:    synth,
		insights: insights,
		renderer: renderer,
		preview:  preview,
		report:   report,
	}
}

// Run executes the whole pipeline. The returned error is non-nil only
// for unrecoverable output failures; everything else is logged and the
// remaining aggregates still run.
func (p *Pipeline) Run() error {
	for _, dir := range []string{p.cfg.ChartDir, p.cfg.UserChartDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create chart dir %q: %w", dir, err)
		}
	}

	batch := p.resolveBatch()
	users := p.resolveUsers()

	report := &models.RunReport{Synthetic: batch.Source == models.BatchSynthetic}

	top := p.insights.TopIngredients(batch.Ingredients)
	if err := p.step("top-ingredients", func() error {
		if len(top) == 0 {
			p.logger.Warn("[pipeline] No ingredient names found — skipping top-ingredients chart")
			return nil
		}
		path := filepath.Join(p.cfg.ChartDir, "top_ingredients.png")
		if err := p.renderer.TopIngredients(path, top); err != nil {
			return err
		}
		report.RecipeCharts = append(report.RecipeCharts, "top_ingredients.png")
		return nil
	}); err != nil {
		return err
	}
	if err := p.preview.WritePreview(top); err != nil {
		return fmt.Errorf("write preview csv: %w", err)
	}

	if err := p.step("prep-time-histogram", func() error {
		h := p.insights.PrepTimeHistogram(batch.Recipes)
		if h.Observations == 0 {
			p.logger.Warn("[pipeline] No numeric prep times — skipping histogram")
			return nil
		}
		path := filepath.Join(p.cfg.ChartDir, "prep_time_histogram.png")
		if err := p.renderer.PrepTimeHistogram(path, h); err != nil {
			return err
		}
		report.RecipeCharts = append(report.RecipeCharts, "prep_time_histogram.png")
		return nil
	}); err != nil {
		return err
	}

	if err := p.step("prep-vs-likes", func() error {
		points := p.insights.PrepVsLikes(batch.Recipes, batch.Interactions)
		if len(points) == 0 {
			p.logger.Warn("[pipeline] No recipes — skipping prep-vs-likes scatter")
			return nil
		}
		path := filepath.Join(p.cfg.ChartDir, "prep_vs_likes_scatter.png")
		if err := p.renderer.PrepVsLikes(path, points); err != nil {
			return err
		}
		report.RecipeCharts = append(report.RecipeCharts, "prep_vs_likes_scatter.png")
		return nil
	}); err != nil {
		return err
	}

	if p.cfg.UserAnalytics && users.Present {
		if err := p.runUserAnalytics(users, batch.Interactions, report); err != nil {
			return err
		}
	} else if !users.Present {
		p.logger.Info("[pipeline] Users dataset not resolved — skipping user analytics")
	}

	if err := p.report.WriteReport(report); err != nil {
		return err
	}

	p.logger.Info("[pipeline] Done — %d recipe charts, %d user charts (data source: %s)",
		len(report.RecipeCharts), len(report.UserCharts), batch.Source)
	return nil
}

func (p *Pipeline) runUserAnalytics(users models.UserSet, inters models.InteractionSet, report *models.RunReport) error {
	if users.HasCountry {
		if err := p.step("users-by-country", func() error {
			rows := p.insights.UsersByCountry(users)
			if len(rows) == 0 {
				return nil
			}
			path := filepath.Join(p.cfg.UserChartDir(), "users_by_country.png")
			if err := p.renderer.UsersByCountry(path, rows); err != nil {
				return err
			}
			report.UserCharts = append(report.UserCharts, "users/users_by_country.png")
			return nil
		}); err != nil {
			return err
		}
	} else {
		p.logger.Info("[pipeline] Users dataset has no country column — skipping users-by-country chart")
	}

	if inters.HasUserID {
		if err := p.step("top-users", func() error {
			rows := p.insights.TopUsers(inters)
			if len(rows) == 0 {
				return nil
			}
			path := filepath.Join(p.cfg.UserChartDir(), "top_users_by_interactions.png")
			if err := p.renderer.TopUsers(path, rows); err != nil {
				return err
			}
			report.UserCharts = append(report.UserCharts, "users/top_users_by_interactions.png")
			return nil
		}); err != nil {
			return err
		}
	}

	if inters.HasCreatedAt {
		if err := p.step("interactions-per-day", func() error {
			days := p.insights.InteractionsPerDay(inters)
			if len(days) == 0 {
				p.logger.Warn("[pipeline] No parseable interaction timestamps — skipping per-day chart")
				return nil
			}
			path := filepath.Join(p.cfg.UserChartDir(), "interactions_per_day.png")
			if err := p.renderer.InteractionsPerDay(path, days); err != nil {
				return err
			}
			report.UserCharts = append(report.UserCharts, "users/interactions_per_day.png")
			return nil
		}); err != nil {
			return err
		}
	}

	return nil
}

// resolveBatch applies the all-or-nothing policy over the three required
// datasets: if any fails to resolve, every resolved result is discarded
// and the whole batch is synthesized as one consistent set.
func (p *Pipeline) resolveBatch() models.Batch {
	recipeT, okRecipes := p.resolver.Resolve("recipe", p.cfg.Candidates("recipe.csv"))
	ingT, okIngredients := p.resolver.Resolve("ingredients", p.cfg.Candidates("ingredients.csv"))
	interT, okInteractions := p.resolver.Resolve("interactions", p.cfg.Candidates("interactions.csv"))

	if okRecipes && okIngredients && okInteractions {
		return models.Batch{
			Recipes:      loader.DecodeRecipes(recipeT),
			Ingredients:  loader.DecodeIngredients(ingT),
			Interactions: loader.DecodeInteractions(interT),
			Source:       models.BatchResolved,
		}
	}

	p.logger.Warn("[pipeline] Required dataset missing (recipe=%t ingredients=%t interactions=%t) — discarding partial results",
		okRecipes, okIngredients, okInteractions)
	return p.synth.Batch()
}

// resolveUsers resolves the optional users dataset. It never triggers
// synthetic substitution; an unresolved users file only disables the
// user-derived aggregates.
func (p *Pipeline) resolveUsers() models.UserSet {
	t, ok := p.resolver.Resolve("users", p.cfg.Candidates("users.csv"))
	if !ok {
		return models.UserSet{}
	}
	return loader.DecodeUsers(t)
}

// step runs one aggregate+render unit in isolation. Render failures and
// panics are logged and suppressed so the remaining aggregates still
// run; only filesystem write failures propagate to the caller.
func (p *Pipeline) step(name string, fn func() error) (fatal error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("[pipeline] Aggregate %s panicked: %v", name, r)
		}
	}()

	err := fn()
	if err == nil {
		return nil
	}

	var we *charts.WriteError
	if errors.As(err, &we) {
		return err
	}
	p.logger.Error("[pipeline] Aggregate %s failed: %v", name, err)
	return nil
}
