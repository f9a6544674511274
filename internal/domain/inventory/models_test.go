package inventory

import "testing"

func TestLowStock(t *testing.T) {
	list := []Ingredient{
		{ID: "i1", Stock: 5, MinStock: 10},
		{ID: "i2", Stock: 100, MinStock: 10},
		{ID: "i3", Stock: 10, MinStock: 10},
	}

	low := LowStock(list)
	if len(low) != 2 {
		t.Fatalf("expected 2 low ingredients, got %d", len(low))
	}
	if low[0].ID != "i1" || low[1].ID != "i3" {
		t.Fatalf("unexpected low ingredients: %+v", low)
	}
}

func TestRecipeCost(t *testing.T) {
	ingredients := map[string]Ingredient{
		"flour":  {ID: "flour", Cost: 2},
		"cheese": {ID: "cheese", Cost: 8},
	}
	recipe := []RecipeItem{
		{IngredientID: "flour", Quantity: 0.5},
		{IngredientID: "cheese", Quantity: 0.25},
		{IngredientID: "unknown", Quantity: 3},
	}

	if got := RecipeCost(recipe, ingredients); got != 3 {
		t.Fatalf("expected recipe cost 3, got %v", got)
	}
}
