package models

// Recipe is one row of the recipe dataset. Numeric fields carry a
// companion Has flag because the source value may be absent or fail to
// coerce; which of the two (drop vs zero-fill) applies is decided by
// each aggregate, not here.
type Recipe struct {
	RecipeID     string
	Name         string
	PrepTimeMin  float64
	HasPrepTime  bool
	CookTimeMin  float64
	HasCookTime  bool
	TotalTimeMin float64 // prep + cook, derived when both are present
	Difficulty   string
}

// Ingredient is one row of the ingredients dataset. Many-to-one with
// Recipe via RecipeID; the referenced recipe need not exist.
type Ingredient struct {
	RecipeID     string
	IngredientID string
	Name         string
	Quantity     float64
	HasQuantity  bool
	Unit         string
	Order        int
}

// Interaction is one row of the interactions dataset.
type Interaction struct {
	InteractionID string
	UserID        string
	RecipeID      string
	Type          string
	Rating        float64
	HasRating     bool
	CreatedAt     string // raw timestamp text; parsed only by the per-day aggregate
}

// InteractionSet wraps interaction rows together with which optional
// columns were actually present in the source file.
type InteractionSet struct {
	Rows         []Interaction
	HasUserID    bool
	HasRating    bool
	HasCreatedAt bool
}

// User is one row of the optional users dataset.
type User struct {
	UserID     string
	Country    string
	HasCountry bool
}

// UserSet wraps user rows. Present is false when users.csv could not be
// resolved at all, which disables every user-derived aggregate.
type UserSet struct {
	Rows       []User
	Present    bool
	HasCountry bool
}

// Interaction type values.
const (
	InteractionView        = "view"
	InteractionLike        = "like"
	InteractionCookAttempt = "cook_attempt"
	InteractionRating      = "rating"
)

// BatchSource tags how the three required datasets were obtained.
type BatchSource int

const (
	BatchResolved BatchSource = iota
	BatchSynthetic
)

func (s BatchSource) String() string {
	if s == BatchSynthetic {
		return "synthetic"
	}
	return "resolved"
}

// Batch is the pipeline's resolved input: the three required datasets
// plus the tag saying whether they came from real files or the
// synthesizer. The policy is all-or-nothing — a batch never mixes real
// and synthetic tables.
type Batch struct {
	Recipes      []Recipe
	Ingredients  []Ingredient
	Interactions InteractionSet
	Source       BatchSource
}
