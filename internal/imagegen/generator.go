// Package imagegen talks to the image-generation service that performs share card
// edits. Requests are at-most-once; nothing in this package retries.
package imagegen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/lumibot/internal/constants"
	"github.com/julianstephens/lumibot/internal/editor"
)

var (
	// ErrNotConfigured is returned by Unavailable when no API key was found.
	ErrNotConfigured = errors.New("image generation is not configured: set an API key with 'lumibot keyring set' or $" + constants.EnvAPIKey)
	// ErrNoImage is returned when the service answers without any image data.
	ErrNoImage = errors.New("no image in the response")
	// ErrDecode is returned when the returned bytes are not a decodable image.
	ErrDecode = errors.New("returned image could not be decoded")
)

// Request is one edit: the source image and what to do to it.
type Request struct {
	Image       []byte
	MIMEType    string
	Instruction string
}

// Generator produces an edited image from a Request.
type Generator interface {
	Generate(ctx context.Context, req Request) ([]byte, error)
}

// FromEditor converts a workflow request into a generator request.
func FromEditor(req editor.Request) Request {
	return Request{
		Image:       req.Image.Data,
		MIMEType:    req.Image.MIMEType,
		Instruction: req.Instruction,
	}
}

// Unavailable is the generator used when no API key is configured.
type Unavailable struct{}

func (Unavailable) Generate(context.Context, Request) ([]byte, error) {
	return nil, ErrNotConfigured
}

// Dimensions returns the width and height of an encoded image, or ErrDecode.
func Dimensions(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return cfg.Width, cfg.Height, nil
}

// ReadImageFile loads a local image for editing. Non-image content and files larger
// than the upload limit are rejected.
func ReadImageFile(path string) (editor.Image, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return editor.Image{}, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		return editor.Image{}, fmt.Errorf("failed to read image: %w", err)
	}
	if info.IsDir() {
		return editor.Image{}, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > constants.MaxImageBytes {
		return editor.Image{}, fmt.Errorf("image is too large (%d bytes, limit %d)", info.Size(), constants.MaxImageBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return editor.Image{}, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) == 0 {
		return editor.Image{}, editor.ErrEmptyImage
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return editor.Image{}, fmt.Errorf("%s is not an image (detected %s)", filepath.Base(path), mimeType)
	}

	return editor.Image{
		Name:     filepath.Base(path),
		MIMEType: mimeType,
		Data:     data,
	}, nil
}

// ResultImage wraps generated bytes for the edit workflow, named after the source
// image. The MIME type is sniffed from the data and left empty when there is none.
func ResultImage(name string, data []byte) editor.Image {
	img := editor.Image{Name: name, Data: data}
	if len(data) > 0 {
		img.MIMEType = http.DetectContentType(data)
	}
	return img
}

// EditedPath returns where the edited copy of src is saved.
func EditedPath(src string) string {
	ext := filepath.Ext(src)
	return strings.TrimSuffix(src, ext) + constants.EditedImageSuffix
}

// WriteImageFile saves generated image bytes to path.
func WriteImageFile(path string, data []byte) error {
	if len(data) == 0 {
		return ErrNoImage
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
