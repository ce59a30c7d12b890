package controllers

import (
	"generate-reel-api/application/ports/inbound"
	"generate-reel-api/application/ports/outbound"
	"generate-reel-api/domain"
	"generate-reel-api/infrastructure/gin_interface/dto"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const emptyFeedMessage = "No videos available at this time. Please try again later."

type ReelsController interface {
	GenerateReel(c *gin.Context)
	ListReels(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type reelsController struct {
	logger        outbound.LoggerPort
	reelGenerator inbound.ReelGeneratorPort
	reelFeed      inbound.ReelFeedPort
}

func NewReelsController(logger outbound.LoggerPort, reelGenerator inbound.ReelGeneratorPort,
	reelFeed inbound.ReelFeedPort) ReelsController {
	return &reelsController{
		logger:        logger,
		reelGenerator: reelGenerator,
		reelFeed:      reelFeed,
	}
}

func (r *reelsController) GenerateReel(c *gin.Context) {
	var request dto.GenerateReelRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing celebrityName"})
		return
	}

	if err := r.reelGenerator.GenerateAndUpload(c.Request.Context(), request.CelebrityName); err != nil {
		r.logger.ErrorWithFields(err, "reel generation failed", map[string]interface{}{
			"celebrity": request.CelebrityName,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate and upload reel"})
		return
	}

	c.JSON(http.StatusOK, dto.GenerateReelResponse{Success: true})
}

func (r *reelsController) ListReels(c *gin.Context) {
	page := parsePositiveInt(c.Query("page"), 1)
	limit := parsePositiveInt(c.Query("limit"), 5)
	token := c.Query("token")
	session := c.Query("session")

	feed, err := r.reelFeed.List(c.Request.Context(), inbound.ListReelsParams{
		Limit:   limit,
		Cursor:  token,
		Shuffle: session != "",
	})
	if err != nil {
		r.logger.Error(err, "failed to fetch reels")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch videos from S3",
			"message": err.Error(),
		})
		return
	}

	response := dto.ReelFeedResponse{
		Reels: feed.Items,
		Pagination: dto.Pagination{
			Page:      page,
			Limit:     limit,
			HasMore:   feed.HasMore,
			NextToken: feed.NextCursor,
		},
	}
	if len(feed.Items) == 0 {
		response.Reels = []domain.ReelFeedItem{}
		response.Message = emptyFeedMessage
	}

	c.JSON(http.StatusOK, response)
}

func (r *reelsController) RegisterRoutes(g *gin.Engine) {
	g.POST("/api/reels/generate", r.GenerateReel)
	g.GET("/api/reels", r.ListReels)
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}
