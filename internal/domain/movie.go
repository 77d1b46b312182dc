package domain

// Movie represents one row of the ratings dataset. Rows are loaded once at
// startup and never mutated afterwards.
type Movie struct {
	Film           string  `json:"film"`
	Genre          string  `json:"genre"`
	CriticRating   float64 `json:"criticRating"`
	AudienceRating float64 `json:"audienceRating"`
	BudgetMillions float64 `json:"budgetMillions"`
	Year           int     `json:"year"`
}
