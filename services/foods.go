// services/foods.go
package services

import "strings"

// FoodItem is a row of the built-in foods table used for quick logging,
// meal plan generation and photo recognition matching.
type FoodItem struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

var CommonFoods = []FoodItem{
	{Name: "Chicken Breast (100g)", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
	{Name: "Brown Rice (1 cup cooked)", Calories: 216, Protein: 5, Carbs: 45, Fat: 1.8},
	{Name: "Broccoli (1 cup)", Calories: 25, Protein: 3, Carbs: 5, Fat: 0.3},
	{Name: "Salmon (100g)", Calories: 208, Protein: 20, Carbs: 0, Fat: 12},
	{Name: "Sweet Potato (1 medium)", Calories: 112, Protein: 2, Carbs: 26, Fat: 0.1},
	{Name: "Greek Yogurt (1 cup)", Calories: 130, Protein: 23, Carbs: 9, Fat: 0},
	{Name: "Almonds (28g)", Calories: 164, Protein: 6, Carbs: 6, Fat: 14},
	{Name: "Banana (1 medium)", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4},
	{Name: "Oatmeal (1 cup cooked)", Calories: 154, Protein: 6, Carbs: 28, Fat: 3},
	{Name: "Eggs (2 large)", Calories: 140, Protein: 12, Carbs: 1, Fat: 10},
	{Name: "Avocado (1/2 medium)", Calories: 120, Protein: 1.5, Carbs: 6, Fat: 11},
	{Name: "Quinoa (1 cup cooked)", Calories: 222, Protein: 8, Carbs: 39, Fat: 3.5},
	{Name: "Tuna (100g)", Calories: 132, Protein: 28, Carbs: 0, Fat: 1.3},
	{Name: "Spinach (1 cup)", Calories: 7, Protein: 0.9, Carbs: 1, Fat: 0.1},
	{Name: "Whole Wheat Bread (2 slices)", Calories: 160, Protein: 8, Carbs: 28, Fat: 2},
	{Name: "Peanut Butter (2 tbsp)", Calories: 188, Protein: 8, Carbs: 7, Fat: 16},
	{Name: "Apple (1 medium)", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3},
	{Name: "Cottage Cheese (1 cup)", Calories: 206, Protein: 28, Carbs: 6, Fat: 9},
	{Name: "Turkey Breast (100g)", Calories: 135, Protein: 30, Carbs: 0, Fat: 0.7},
	{Name: "Blueberries (1 cup)", Calories: 84, Protein: 1, Carbs: 21, Fat: 0.5},
}

// FindFood does a case-insensitive substring match over the foods table.
func FindFood(keyword string) *FoodItem {
	kw := strings.ToLower(keyword)
	for i := range CommonFoods {
		if strings.Contains(strings.ToLower(CommonFoods[i].Name), kw) {
			return &CommonFoods[i]
		}
	}
	return nil
}

// SearchFoods returns every table entry matching the query, or the whole
// table when the query is empty.
func SearchFoods(query string) []FoodItem {
	if query == "" {
		return CommonFoods
	}
	q := strings.ToLower(query)
	var matches []FoodItem
	for _, f := range CommonFoods {
		if strings.Contains(strings.ToLower(f.Name), q) {
			matches = append(matches, f)
		}
	}
	return matches
}
