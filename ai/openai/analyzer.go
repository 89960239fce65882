// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/docfind/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// DocumentAnalyzer implements ai.DocumentAnalyzer using OpenAI-compatible chat APIs.
type DocumentAnalyzer struct {
	client      llms.Model
	maxKeywords int
	logger      *slog.Logger
}

// analysis is the wrapper structure for the LLM's JSON response.
type analysis struct {
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
	Topics   []string `json:"topics"`
	Language string   `json:"language"`
}

// newDocumentAnalyzer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newDocumentAnalyzer(config *ai.Config) (*DocumentAnalyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.AnalyzerHost),
		openai.WithToken("none"),
		openai.WithModel(config.AnalyzerModel),
	)
	if err != nil {
		return nil, err
	}

	return &DocumentAnalyzer{
		client:      client,
		maxKeywords: config.MaxKeywords,
		logger:      slog.Default().With("component", "openai-analyzer"),
	}, nil
}

// NewDocumentAnalyzer creates a new document analyzer using the provided configuration.
//
// Returns ai.DocumentAnalyzer interface to enforce abstraction.
func NewDocumentAnalyzer(config *ai.Config) (ai.DocumentAnalyzer, error) {
	return newDocumentAnalyzer(config)
}

// Analyze derives a summary, keywords, topics, and language from text using
// an LLM. Topics outside the predefined set are dropped and keywords are
// capped at the configured maximum.
func (a *DocumentAnalyzer) Analyze(ctx context.Context, text string) (*ai.Analysis, error) {
	text = scrubString(text)

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildAnalysisPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result analysis
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := a.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			a.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			a.logger.Debug("no choices returned from model")
			return &ai.Analysis{Keywords: []string{}, Topics: []string{}}, nil
		}

		responseText := stripCodeFences(response.Choices[0].Content)
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			a.logger.Warn("error parsing analyzer response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		a.logger.Error("failed to parse analyzer response after retries", "err", lastErr)
		return nil, lastErr
	}

	out := &ai.Analysis{
		Summary:  strings.TrimSpace(result.Summary),
		Keywords: normalizeKeywords(result.Keywords, a.maxKeywords),
		Topics:   filterTopics(result.Topics),
		Language: strings.ToLower(strings.TrimSpace(result.Language)),
	}

	a.logger.Debug("analyzed document",
		"keywords", len(out.Keywords),
		"topics", len(out.Topics),
		"language", out.Language)

	return out, nil
}

// stripCodeFences removes markdown code fences some models wrap JSON in.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// normalizeKeywords lowercases, deduplicates, and caps the keyword list.
func normalizeKeywords(keywords []string, max int) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
		if len(out) == max {
			break
		}
	}
	return out
}

// filterTopics keeps only topics from the predefined set.
func filterTopics(topics []string) []string {
	out := make([]string, 0, len(topics))
	for _, topic := range topics {
		topic = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(topic)), " ", "_")
		if slices.Contains(ai.TopicTypes, topic) && !slices.Contains(out, topic) {
			out = append(out, topic)
		}
	}
	return out
}
