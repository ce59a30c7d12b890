package dto

type GenerateReelRequest struct {
	CelebrityName string `json:"celebrityName" binding:"required"`
}

type GenerateReelResponse struct {
	Success bool `json:"success"`
}
