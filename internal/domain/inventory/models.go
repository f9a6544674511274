package inventory

type Ingredient struct {
	ID       string  `json:"id"`
	BranchID string  `json:"branchId"`
	Name     string  `json:"name"`
	Stock    float64 `json:"stock"`
	MinStock float64 `json:"minStock"`
	Unit     string  `json:"unit"`
	Cost     float64 `json:"cost"`
}

type Product struct {
	ID       string       `json:"id"`
	BranchID string       `json:"branchId"`
	Name     string       `json:"name"`
	Price    float64      `json:"price"`
	Category string       `json:"category"`
	Recipe   []RecipeItem `json:"recipe,omitempty"`
}

// RecipeItem is the quantity of one ingredient consumed per unit of
// product sold.
type RecipeItem struct {
	IngredientID string  `json:"ingredientId"`
	Quantity     float64 `json:"quantity"`
}

// LowStock returns the ingredient IDs at or below their minimum.
func LowStock(list []Ingredient) []Ingredient {
	var out []Ingredient
	for _, ing := range list {
		if ing.Stock <= ing.MinStock {
			out = append(out, ing)
		}
	}
	return out
}

// RecipeCost sums ingredient cost times recipe quantity for one
// product. Unknown ingredients contribute nothing.
func RecipeCost(recipe []RecipeItem, ingredients map[string]Ingredient) float64 {
	var total float64
	for _, item := range recipe {
		if ing, ok := ingredients[item.IngredientID]; ok {
			total += ing.Cost * item.Quantity
		}
	}
	return total
}
