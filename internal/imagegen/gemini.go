package imagegen

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/julianstephens/lumibot/internal/logger"
)

// Gemini edits images with a Gemini image model.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

// Generate sends the source image and instruction in one request and returns the
// first image the model answers with.
func (g *Gemini) Generate(ctx context.Context, req Request) ([]byte, error) {
	logger.Debug("Sending image edit request", "model", g.model, "bytes", len(req.Image), "mime", req.MIMEType)

	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx,
		genai.Blob{MIMEType: req.MIMEType, Data: req.Image},
		genai.Text(req.Instruction),
	)
	if err != nil {
		return nil, fmt.Errorf("gemini API call failed (%s): %w", g.model, err)
	}
	return extractImage(resp)
}

// extractImage pulls the first inline image out of a response and checks that it decodes.
func extractImage(resp *genai.GenerateContentResponse) ([]byte, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, ErrNoImage
	}

	var text []string
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			switch p := part.(type) {
			case genai.Blob:
				if len(p.Data) == 0 {
					continue
				}
				if _, _, err := Dimensions(p.Data); err != nil {
					return nil, err
				}
				return p.Data, nil
			case genai.Text:
				if s := strings.TrimSpace(string(p)); s != "" {
					text = append(text, s)
				}
			}
		}
	}

	if len(text) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoImage, strings.Join(text, " "))
	}
	return nil, ErrNoImage
}
