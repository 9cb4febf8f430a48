package dto

type SubmitReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type ProductReviews struct {
	Reviews       []interface{} `json:"reviews"`
	AverageRating float64       `json:"average_rating"`
	Count         int64         `json:"count"`
}
