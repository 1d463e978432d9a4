package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"recipe-charts/config"
	"recipe-charts/models"
	"recipe-charts/utils"
)

// Fixed catalogue for synthetic batches. Every fabricated ingredient and
// interaction references one of these recipes, so the batch is always
// referentially closed.
var sampleRecipeIDs = []string{
	"recipe_puran_poli",
	"recipe_pasta_alfredo",
	"recipe_veg_biryani",
	"recipe_aloo_paratha",
	"recipe_egg_fried_rice",
	"recipe_paneer_butter_masala",
}

var ingredientVocabulary = []string{"onion", "garlic", "salt", "oil", "turmeric"}

var difficulties = []string{"easy", "medium", "hard"}

// interactionWeights skews the synthetic traffic toward passive views,
// the way real interaction logs look.
var interactionWeights = []struct {
	kind   string
	weight int
}{
	{models.InteractionView, 5},
	{models.InteractionLike, 3},
	{models.InteractionCookAttempt, 1},
	{models.InteractionRating, 1},
}

const ingredientsPerRecipe = 5

// Synthesizer fabricates a mutually consistent batch of recipe,
// ingredient and interaction rows when the real datasets cannot be
// resolved. It never fabricates users.
type Synthesizer struct {
	logger       *utils.Logger
	rng          *rand.Rand
	interactions int
}

// NewSynthesizer creates a Synthesizer. The seed makes generation
// reproducible in tests; production callers pass the current time.
func NewSynthesizer(cfg *config.Config, logger *utils.Logger, seed int64) *Synthesizer {
	return &Synthesizer{
		logger:       logger,
		rng:          rand.New(rand.NewSource(seed)),
		interactions: cfg.SyntheticInteractions,
	}
}

// Batch fabricates the three required datasets as one closed set.
func (s *Synthesizer) Batch() models.Batch {
	s.logger.Warn("[synthesizer] Synthesizing fallback dataset (%d recipes, %d interactions)",
		len(sampleRecipeIDs), s.interactions)

	batch := models.Batch{Source: models.BatchSynthetic}

	for _, rid := range sampleRecipeIDs {
		prep := float64(10 + s.rng.Intn(31))
		cook := float64(10 + s.rng.Intn(51))
		batch.Recipes = append(batch.Recipes, models.Recipe{
			RecipeID:     rid,
			Name:         displayName(rid),
			PrepTimeMin:  prep,
			HasPrepTime:  true,
			CookTimeMin:  cook,
			HasCookTime:  true,
			TotalTimeMin: prep + cook,
			Difficulty:   difficulties[s.rng.Intn(len(difficulties))],
		})

		for i := 0; i < ingredientsPerRecipe; i++ {
			batch.Ingredients = append(batch.Ingredients, models.Ingredient{
				RecipeID:     rid,
				IngredientID: fmt.Sprintf("%s_ing%d", rid, i+1),
				Name:         ingredientVocabulary[s.rng.Intn(len(ingredientVocabulary))],
				Quantity:     float64(1 + s.rng.Intn(3)),
				HasQuantity:  true,
				Unit:         "unit",
				Order:        i + 1,
			})
		}
	}

	batch.Interactions = s.syntheticInteractions()
	return batch
}

func (s *Synthesizer) syntheticInteractions() models.InteractionSet {
	set := models.InteractionSet{
		HasUserID:    true,
		HasRating:    true,
		HasCreatedAt: true,
	}

	// Spread timestamps over the last two weeks so the per-day chart has
	// something to show on synthetic runs.
	firstDay := time.Now().AddDate(0, 0, -13).Truncate(24 * time.Hour)

	for i := 0; i < s.interactions; i++ {
		in := models.Interaction{
			InteractionID: uuid.NewString(),
			UserID:        fmt.Sprintf("user%d", 1+s.rng.Intn(10)),
			RecipeID:      sampleRecipeIDs[s.rng.Intn(len(sampleRecipeIDs))],
			Type:          s.pickType(),
		}
		if in.Type == models.InteractionRating {
			// Ratings are occasionally left blank, matching real logs.
			if v := s.rng.Intn(4); v > 0 {
				in.Rating = float64(2 + v)
				in.HasRating = true
			}
		}
		ts := firstDay.AddDate(0, 0, s.rng.Intn(14)).
			Add(time.Duration(s.rng.Intn(24*60)) * time.Minute)
		in.CreatedAt = ts.Format("2006-01-02 15:04:05")

		set.Rows = append(set.Rows, in)
	}
	return set
}

func (s *Synthesizer) pickType() string {
	total := 0
	for _, w := range interactionWeights {
		total += w.weight
	}
	n := s.rng.Intn(total)
	for _, w := range interactionWeights {
		n -= w.weight
		if n < 0 {
			return w.kind
		}
	}
	return interactionWeights[0].kind
}

// displayName turns "recipe_puran_poli" into "Puran Poli".
func displayName(rid string) string {
	name := strings.TrimPrefix(rid, "recipe_")
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
