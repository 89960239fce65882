package openai

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/docfind/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const recognitionPrompt = `Transcribe all readable text from this image.
Return only the text, preserving line breaks. If the image contains no
readable text, return an empty response.`

// TextRecognizer implements ai.TextRecognizer using an OpenAI-compatible
// vision model. The ref passed to RecognizeText is a filesystem path.
type TextRecognizer struct {
	client llms.Model
	logger *slog.Logger
}

// newTextRecognizer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newTextRecognizer(config *ai.Config) (*TextRecognizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.RecognizerHost),
		openai.WithToken("none"),
		openai.WithModel(config.RecognizerModel),
	)
	if err != nil {
		return nil, err
	}

	return &TextRecognizer{
		client: client,
		logger: slog.Default().With("component", "openai-recognizer"),
	}, nil
}

// NewTextRecognizer creates a new OCR recognizer using the provided configuration.
//
// Returns ai.TextRecognizer interface to enforce abstraction.
func NewTextRecognizer(config *ai.Config) (ai.TextRecognizer, error) {
	return newTextRecognizer(config)
}

// RecognizeText reads the image at ref and asks the vision model to
// transcribe it.
func (r *TextRecognizer) RecognizeText(ctx context.Context, ref string) (string, error) {
	data, err := os.ReadFile(ref)
	if err != nil {
		return "", fmt.Errorf("reading image %s: %w", ref, err)
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(recognitionPrompt),
				llms.BinaryPart(imageMIMEType(ref), data),
			},
		},
	}

	response, err := r.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		r.logger.Error("failed to recognize text", "ref", ref, "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		r.logger.Debug("no choices returned from model", "ref", ref)
		return "", nil
	}

	text := strings.TrimSpace(response.Choices[0].Content)
	r.logger.Debug("recognized text", "ref", ref, "length", len(text))

	return text, nil
}

// imageMIMEType maps a file extension to its MIME type, defaulting to PNG.
func imageMIMEType(ref string) string {
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/png"
	}
}
