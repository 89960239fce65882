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


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for AI service providers.
type Config struct {
	// RecognizerHost is the base URL for the OCR service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	RecognizerHost string

	// AnalyzerHost is the base URL for the document analysis service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	AnalyzerHost string

	// RecognizerModel is the vision model identifier to use for OCR.
	// Example: "llava:7b", "gpt-4o-mini"
	RecognizerModel string

	// AnalyzerModel is the model identifier to use for document analysis.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	AnalyzerModel string

	// MaxKeywords caps the number of keywords an analyzer returns per
	// document. Default: 8
	MaxKeywords int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithRecognizerHost sets the OCR service host URL.
func WithRecognizerHost(host string) ConfigOption {
	return func(c *Config) {
		c.RecognizerHost = host
	}
}

// WithAnalyzerHost sets the analyzer service host URL.
func WithAnalyzerHost(host string) ConfigOption {
	return func(c *Config) {
		c.AnalyzerHost = host
	}
}

// WithHost sets both recognizer and analyzer hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.RecognizerHost = host
		c.AnalyzerHost = host
	}
}

// WithRecognizerModel sets the OCR model identifier.
func WithRecognizerModel(model string) ConfigOption {
	return func(c *Config) {
		c.RecognizerModel = model
	}
}

// WithAnalyzerModel sets the analyzer model identifier.
func WithAnalyzerModel(model string) ConfigOption {
	return func(c *Config) {
		c.AnalyzerModel = model
	}
}

// WithMaxKeywords sets the per-document keyword cap.
func WithMaxKeywords(max int) ConfigOption {
	return func(c *Config) {
		c.MaxKeywords = max
	}
}

// DefaultConfig returns a Config with sensible defaults for local OpenAI-compatible services.
// By default, both recognizer and analyzer use the same host.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		RecognizerHost:  defaultHost,
		AnalyzerHost:    defaultHost,
		RecognizerModel: "llava:7b",
		AnalyzerModel:   "qwen2.5:3b",
		MaxKeywords:     8,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
// This is the recommended way to create a Config with custom settings.
//
// Example:
//   cfg := NewConfig(
//       WithHost("http://localhost:11434/v1"),
//       WithAnalyzerModel("gpt-4o-mini"),
//   )
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to hosts if missing, which is required
// by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.RecognizerHost != "" && !strings.HasSuffix(c.RecognizerHost, "/v1") {
		c.RecognizerHost = strings.TrimSuffix(c.RecognizerHost, "/")
		c.RecognizerHost = c.RecognizerHost + "/v1"
	}
	if c.AnalyzerHost != "" && !strings.HasSuffix(c.AnalyzerHost, "/v1") {
		c.AnalyzerHost = strings.TrimSuffix(c.AnalyzerHost, "/")
		c.AnalyzerHost = c.AnalyzerHost + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.RecognizerHost == "" {
		return errors.New("ai config: RecognizerHost is required")
	}
	if c.AnalyzerHost == "" {
		return errors.New("ai config: AnalyzerHost is required")
	}
	if c.RecognizerModel == "" {
		return errors.New("ai config: RecognizerModel is required")
	}
	if c.AnalyzerModel == "" {
		return errors.New("ai config: AnalyzerModel is required")
	}
	if c.MaxKeywords < 1 {
		return errors.New("ai config: MaxKeywords must be at least 1")
	}
	return nil
}
