package dto

// FindByIngredientsRequest is the body for the recipes-by-ingredients search
type FindByIngredientsRequest struct {
	Ingredients []string `json:"ingredients"`
	Number      int      `json:"number,omitempty"`
}

// UpstreamErrorResponse wraps an upstream provider failure
type UpstreamErrorResponse struct {
	Success bool `json:"success"`
	Error   any  `json:"error"`
}
