package imagegen

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func response(parts ...genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
	}
}

func TestExtractImage(t *testing.T) {
	img := pngBytes(t, 3, 3)

	got, err := extractImage(response(genai.Text("Here you go"), genai.Blob{MIMEType: "image/png", Data: img}))
	if err != nil {
		t.Fatalf("extractImage() failed: %v", err)
	}
	if !bytes.Equal(got, img) {
		t.Error("extractImage() returned different bytes")
	}
}

func TestExtractImage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		want    error
		message string
	}{
		{"nil response", nil, ErrNoImage, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ErrNoImage, ""},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}, ErrNoImage, ""},
		{"text only", response(genai.Text("I can't edit that image.")), ErrNoImage, "I can't edit that image."},
		{"empty blob", response(genai.Blob{MIMEType: "image/png"}), ErrNoImage, ""},
		{"garbage blob", response(genai.Blob{MIMEType: "image/png", Data: []byte("nope")}), ErrDecode, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractImage(tt.resp)
			if !errors.Is(err, tt.want) {
				t.Fatalf("extractImage() error = %v, want %v", err, tt.want)
			}
			if tt.message != "" && !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error %q does not carry the model's reply", err)
			}
		})
	}
}

func TestNewGemini_RequiresKey(t *testing.T) {
	if _, err := NewGemini(context.Background(), "", "model"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("NewGemini(no key) error = %v, want ErrNotConfigured", err)
	}
}
