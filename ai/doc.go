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


// Package ai provides abstractions for AI services used in Docfind.
//
// This package defines interfaces for AI operations including OCR text
// recognition and document analysis. It follows the dependency inversion
// principle, allowing the core domain and business logic to depend on
// abstractions rather than concrete implementations.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - TextRecognizer: Extracts text from document images
//   - DocumentAnalyzer: Derives summaries, keywords, topics, and language
//   - AIProvider: Aggregates AI services for convenient initialization
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider and friends) return INTERFACE
// types to enforce abstraction and prevent accidental coupling to concrete
// implementations.
//
//	provider, err := openai.NewProvider(config)  // returns ai.AIProvider
//
// Test utility constructors (mock.NewMockRecognizer, mock.NewMockAnalyzer)
// return CONCRETE types to enable test assertions and behavior injection via
// the mock's public methods (CallCount, WithXFunc, Reset, etc.).
//
//	mockOCR := mock.NewMockRecognizer()   // returns *mock.MockRecognizer
//	mockOCR.WithRecognizeTextFunc(...)    // needs concrete type
//	count := mockOCR.CallCount()          // test assertion
//
// The mock.NewMockProvider() returns an interface since it's the primary entry
// point, but provides GetMockRecognizer()/GetMockAnalyzer() methods to access
// concrete types for assertions when needed.
//
// # Usage Example
//
//	config := ai.DefaultConfig()
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	text, err := provider.Recognizer().RecognizeText(ctx, "scan-001.png")
//	analysis, err := provider.Analyzer().Analyze(ctx, text)
package ai
