package review

type CreateReviewRequest struct {
	City       string `json:"city" validate:"required"`
	ReviewText string `json:"review_text" validate:"required"`
	Rating     int    `json:"rating" validate:"required,gte=1,lte=5"`
	Likes      int    `json:"likes"`
}

type LikeResponse struct {
	Likes int `json:"likes"`
}
