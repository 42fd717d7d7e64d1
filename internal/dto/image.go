package dto

// MealImageRequest carries the plan text to render into an image
type MealImageRequest struct {
	Recipe string `json:"recipe"`
}

// MealImageResponse returns the generated image as base64, or null when the
// provider yielded nothing.
type MealImageResponse struct {
	Status int     `json:"status"`
	Image  *string `json:"image"`
}

// CaloriesResponse carries the nutrition breakdown for an uploaded food image
type CaloriesResponse struct {
	Status   int    `json:"status"`
	Calories string `json:"calories"`
}
