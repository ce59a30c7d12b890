package dto

import "generate-reel-api/domain"

type Pagination struct {
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
	HasMore   bool   `json:"hasMore"`
	NextToken string `json:"nextToken,omitempty"`
}

type ReelFeedResponse struct {
	Reels      []domain.ReelFeedItem `json:"reels"`
	Pagination Pagination            `json:"pagination"`
	Message    string                `json:"message,omitempty"`
}
