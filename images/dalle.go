package images

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const dalleTimeout = 60 * time.Second

// DalleClient generates a header image with DALL-E 3 when the stock
// search comes up empty. Like the search tier it only reports hit or
// miss; failures are logged, not propagated.
type DalleClient struct {
	opts []option.RequestOption
	log  *slog.Logger
}

func NewDalleClient(apiKey, baseURL string, log *slog.Logger) *DalleClient {
	if log == nil {
		log = slog.Default()
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &DalleClient{opts: opts, log: log}
}

// Generate requests one square standard-quality image for the title.
func (c *DalleClient) Generate(ctx context.Context, title string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, dalleTimeout)
	defer cancel()

	client := openai.NewClient(c.opts...)
	prompt := fmt.Sprintf(
		"Create a modern, professional header image for an article titled '%s'. "+
			"The image should be visually appealing and relevant to the topic.", title)

	resp, err := client.Images.Generate(ctx, openai.ImageGenerateParams{
		Model:   openai.ImageModelDallE3,
		Prompt:  prompt,
		Size:    openai.ImageGenerateParamsSize1024x1024,
		Quality: openai.ImageGenerateParamsQualityStandard,
		N:       openai.Int(1),
	})
	if err != nil {
		c.log.Warn("dall-e generation failed", "error", err)
		return "", false
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		c.log.Warn("dall-e returned no image")
		return "", false
	}
	return resp.Data[0].URL, true
}
