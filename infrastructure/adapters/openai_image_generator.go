package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"generate-reel-api/application/ports/outbound"
	"generate-reel-api/config"
	"generate-reel-api/domain"
	"time"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const imageURLExpiry = 24 * time.Hour

type openaiImageGenerator struct {
	logger      outbound.LoggerPort
	client      openai.Client
	imageConfig *config.ImageConfig
	mediaStore  outbound.MediaStorePort
}

func NewOpenaiImageGenerator(logger outbound.LoggerPort, imageConfig *config.ImageConfig,
	mediaStore outbound.MediaStorePort) outbound.ImageGeneratorPort {
	return &openaiImageGenerator{
		logger:      logger,
		client:      openai.NewClient(option.WithAPIKey(imageConfig.ApiKey)),
		imageConfig: imageConfig,
		mediaStore:  mediaStore,
	}
}

// Generate requests a batch of portrait stills for the subject, stores
// every usable one and hands back presigned URLs. Results without an
// image payload are skipped; the call only fails when nothing usable
// came back at all.
func (g *openaiImageGenerator) Generate(ctx context.Context, subjectName string) ([]string, error) {
	response, err := g.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt: subjectName,
		Model:  openai.ImageModel(g.imageConfig.Model),
		N:      openai.Int(int64(g.imageConfig.Count)),
		Size:   openai.ImageGenerateParamsSize(g.imageConfig.Size),
	})
	if err != nil {
		g.logger.Error(err, "Failed to generate images")
		return nil, &domain.GenerationError{Capability: "image", Err: err}
	}

	urls := make([]string, 0, len(response.Data))
	for _, image := range response.Data {
		if image.B64JSON == "" {
			continue
		}

		decoded, err := base64.StdEncoding.DecodeString(image.B64JSON)
		if err != nil {
			g.logger.Warn("Skipping image with undecodable payload")
			continue
		}

		key := fmt.Sprintf("image/%s.png", uuid.NewString())
		if err := g.mediaStore.Upload(ctx, key, bytes.NewReader(decoded), "image/png"); err != nil {
			return nil, err
		}

		url, err := g.mediaStore.PresignedURL(key, imageURLExpiry)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	if len(urls) == 0 {
		return nil, &domain.GenerationError{Capability: "image", Err: errors.New("no usable images returned")}
	}

	g.logger.DebugWithFields("Images generated", map[string]interface{}{
		"subject": subjectName,
		"count":   len(urls),
	})

	return urls, nil
}
