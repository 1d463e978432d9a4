package loader

import (
	"strconv"

	"recipe-charts/models"
)

// Typed decoding of generic tables. Missing columns and values that fail
// numeric coercion are recorded as absent, never raised as errors — each
// aggregate applies its own drop-row or fill-zero policy downstream.

// DecodeRecipes converts a resolved recipe table into typed records.
func DecodeRecipes(t *Table) []models.Recipe {
	recipes := make([]models.Recipe, 0, t.Len())
	for _, row := range t.Rows {
		rec := models.Recipe{}
		rec.RecipeID, _ = t.Cell(row, "recipe_id")
		rec.Name, _ = t.Cell(row, "name")
		rec.Difficulty, _ = t.Cell(row, "difficulty")
		rec.PrepTimeMin, rec.HasPrepTime = cellFloat(t, row, "prep_time_min")
		rec.CookTimeMin, rec.HasCookTime = cellFloat(t, row, "cook_time_min")
		if rec.HasPrepTime && rec.HasCookTime {
			rec.TotalTimeMin = rec.PrepTimeMin + rec.CookTimeMin
		}
		recipes = append(recipes, rec)
	}
	return recipes
}

// DecodeIngredients converts a resolved ingredients table into typed records.
func DecodeIngredients(t *Table) []models.Ingredient {
	ings := make([]models.Ingredient, 0, t.Len())
	for _, row := range t.Rows {
		ing := models.Ingredient{}
		ing.RecipeID, _ = t.Cell(row, "recipe_id")
		ing.IngredientID, _ = t.Cell(row, "ingredient_id")
		ing.Name, _ = t.Cell(row, "name")
		ing.Unit, _ = t.Cell(row, "unit")
		ing.Quantity, ing.HasQuantity = cellFloat(t, row, "quantity")
		if raw, ok := t.Cell(row, "order"); ok {
			if n, err := strconv.Atoi(raw); err == nil {
				ing.Order = n
			}
		}
		ings = append(ings, ing)
	}
	return ings
}

// DecodeInteractions converts a resolved interactions table into typed
// records, noting which optional columns the file carried.
func DecodeInteractions(t *Table) models.InteractionSet {
	set := models.InteractionSet{
		Rows:         make([]models.Interaction, 0, t.Len()),
		HasUserID:    t.HasColumn("user_id"),
		HasRating:    t.HasColumn("rating"),
		HasCreatedAt: t.HasColumn("created_at"),
	}
	for _, row := range t.Rows {
		in := models.Interaction{}
		in.InteractionID, _ = t.Cell(row, "interaction_id")
		in.UserID, _ = t.Cell(row, "user_id")
		in.RecipeID, _ = t.Cell(row, "recipe_id")
		in.Type, _ = t.Cell(row, "type")
		in.Rating, in.HasRating = cellFloat(t, row, "rating")
		in.CreatedAt, _ = t.Cell(row, "created_at")
		set.Rows = append(set.Rows, in)
	}
	return set
}

// DecodeUsers converts a resolved users table into typed records.
func DecodeUsers(t *Table) models.UserSet {
	set := models.UserSet{
		Rows:       make([]models.User, 0, t.Len()),
		Present:    true,
		HasCountry: t.HasColumn("country"),
	}
	for _, row := range t.Rows {
		u := models.User{}
		u.UserID, _ = t.Cell(row, "user_id")
		if c, ok := t.Cell(row, "country"); ok && c != "" {
			u.Country = c
			u.HasCountry = true
		}
		set.Rows = append(set.Rows, u)
	}
	return set
}

// cellFloat coerces the named column to a number; ok is false when the
// column is absent, the cell is empty, or parsing fails.
func cellFloat(t *Table, row []string, name string) (float64, bool) {
	raw, ok := t.Cell(row, name)
	if !ok || raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
