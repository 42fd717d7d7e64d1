// Package planner holds the pure string logic around meal plan generation:
// prompt assembly, title synthesis and recipe-name extraction from stored
// plan text. Nothing here touches the network or the database.
package planner

import (
	"fmt"
	"strings"
	"time"

	"NUTRIPLAN_BACK-END/internal/dto"
)

// mealMarker and recipeMarker are the literal markers plan text is split on.
// Clients depend on this exact splitting, so both are load-bearing.
const (
	mealMarker   = "Meal "
	recipeMarker = "Recipe Name: "
)

// BuildMealPlanPrompt concatenates the present optional fields into the
// natural-language prompt, in a fixed order.
func BuildMealPlanPrompt(req *dto.MealPlanRequest) string {
	var b strings.Builder
	b.WriteString("Generate a meal plan")

	if req.Ingredients != nil && *req.Ingredients != "" {
		fmt.Fprintf(&b, " using ingredients: %s", *req.Ingredients)
	}
	if req.Calories != nil && *req.Calories != 0 {
		fmt.Fprintf(&b, " with %d calories per day", *req.Calories)
	}
	if req.MealType != nil && *req.MealType != "" {
		fmt.Fprintf(&b, " for %s meal types", *req.MealType)
	}
	if req.MealsPerDay != nil && *req.MealsPerDay != 0 {
		fmt.Fprintf(&b, " with %d meals per day", *req.MealsPerDay)
	}
	if req.Cuisine != nil && *req.Cuisine != "" {
		fmt.Fprintf(&b, " with %s cuisines", *req.Cuisine)
	}
	if req.DietaryRestriction != nil && *req.DietaryRestriction != "" {
		fmt.Fprintf(&b, " with dietary restrictions: %s", *req.DietaryRestriction)
	}
	if req.DislikedIngredients != nil && *req.DislikedIngredients != "" {
		fmt.Fprintf(&b, " excluding ingredients: %s", *req.DislikedIngredients)
	}
	if req.CookingSkill != nil && *req.CookingSkill != "" {
		fmt.Fprintf(&b, " for %s cooks", *req.CookingSkill)
	}
	if req.CookingTime != nil && *req.CookingTime != "" {
		fmt.Fprintf(&b, " with a %s cooking time", *req.CookingTime)
	}
	if req.AvailableIngredients != nil && *req.AvailableIngredients != "" {
		fmt.Fprintf(&b, " with available ingredients: %s", *req.AvailableIngredients)
	}
	if req.DietaryGoals != nil && *req.DietaryGoals != "" {
		fmt.Fprintf(&b, " with dietary goals of: %s", *req.DietaryGoals)
	}
	if req.BudgetConstraints != nil && *req.BudgetConstraints != "" {
		fmt.Fprintf(&b, " with budget constraint of $%s", *req.BudgetConstraints)
	}

	return b.String()
}

// BuildTitle synthesizes a plan title from the date and the first
// comma-separated token of the cuisine, calories, meal type and dietary
// restriction fields, in that order.
func BuildTitle(req *dto.MealPlanRequest, now time.Time) string {
	parts := []string{}

	if req.Cuisine != nil && *req.Cuisine != "" {
		parts = append(parts, firstToken(*req.Cuisine))
	}
	if req.Calories != nil && *req.Calories != 0 {
		parts = append(parts, fmt.Sprintf("%dcal", *req.Calories))
	}
	if req.MealType != nil && *req.MealType != "" {
		parts = append(parts, firstToken(*req.MealType))
	}
	if req.DietaryRestriction != nil && *req.DietaryRestriction != "" {
		parts = append(parts, firstToken(*req.DietaryRestriction))
	}

	return fmt.Sprintf("Meal Plan - %s - %s", strings.Join(parts, " "), now.Format("January 02, 2006"))
}

func firstToken(s string) string {
	return strings.TrimSpace(strings.SplitN(s, ",", 2)[0])
}

// ExtractRecipeNames parses plan text into recipe names, in document order.
// The contract is an exact split on the literal "Meal " marker, then the
// literal "Recipe Name: " marker, then the first newline; sections without a
// recipe marker are skipped. Deliberately ad hoc, kept for compatibility with
// stored plans.
func ExtractRecipeNames(recipe string) []string {
	sections := strings.Split(recipe, mealMarker)[1:]

	names := make([]string, 0, len(sections))
	for _, section := range sections {
		_, after, found := strings.Cut(section, recipeMarker)
		if !found {
			continue
		}
		name := strings.TrimSpace(strings.SplitN(after, "\n", 2)[0])
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// BuildMealImagePrompt picks the image prompt for the plan text: a vertical
// multi-plate prompt listing the extracted recipe names when the text holds
// more than one "Meal " section, otherwise a single-plate prompt embedding
// the text itself.
func BuildMealImagePrompt(recipe string) string {
	sections := strings.Split(recipe, mealMarker)[1:]

	if len(sections) > 1 {
		names := ExtractRecipeNames(recipe)
		return fmt.Sprintf(
			"Generate a photorealistic image with these %d meals MUST BE ARRANGED VERTICALLY: %s. "+
				"Each meal should be plated on its own separate white plate. "+
				"Arrange the plates vertically, one below the other, with clear borders or space separating each meal. "+
				"Display meals in the order they appear in the recipe, from top to bottom. "+
				"Use natural lighting and clear details. "+
				"Present in a professional food photography style without text or labels. "+
				"Each dish should look appetizing, properly garnished, and well-presented. "+
				"Use a neutral light background to make each meal stand out. "+
				"Make sure there's clear visual separation between meals with subtle shadows or spacing.",
			len(names), strings.Join(names, ", "))
	}

	return fmt.Sprintf(
		"Generate a photorealistic image of this exact meal: %s. "+
			"Show ONLY ONE plate with this specific dish, photographed from above or at "+
			"a 45-degree angle if the food is inside a glass. "+
			"Use natural lighting and clear details on a white plate. "+
			"Present it in a professional food photography style without any text or labels. "+
			"Do not include multiple plates or other meals. "+
			"Try not to make the food look plain, dry, or unappetizing.",
		recipe)
}
