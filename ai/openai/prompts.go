package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/docfind/ai"
)

const analysisResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "summary": {
      "type": "string"
    },
    "keywords": {
      "type": "array",
      "items": {
        "type": "string",
        "pattern": "^[a-z0-9]+( [a-z0-9]+)*$"
      }
    },
    "topics": {
      "type": "array",
      "items": {
        "type": "string"
      }
    },
    "language": {
      "type": "string",
      "pattern": "^[a-z]{2}$"
    }
  },
  "required": ["summary", "keywords", "topics", "language"],
  "additionalProperties": false
}`

const analysisPromptTemplate = `Analyze the given document text and return the result as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- The summary is 1-3 sentences covering the document's purpose and key facts.
- Keywords must be lowercase, 1-3 words each, drawn from the text. List the most salient terms first.
- Each topic must match exactly one of the listed values: %s.
- Language is the ISO 639-1 code of the document's primary language.
- Include only information present in the text. Do not hallucinate.
- If the text is too short to summarize, return "summary": "" and "keywords": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "Invoice #4821. Total due: $1,200. Payment within 30 days to Acme Corp."
Output:
{
  "summary": "An invoice from Acme Corp for $1,200 due within 30 days.",
  "keywords": ["invoice", "acme corp", "payment"],
  "topics": ["finance", "receipts"],
  "language": "en"
}

Example (no salient content):
Input: "asdf qwer"
Output:
{
  "summary": "",
  "keywords": [],
  "topics": ["general"],
  "language": "en"
}`

// buildAnalysisPrompt creates the system prompt with topic types embedded.
func buildAnalysisPrompt() string {
	return fmt.Sprintf(analysisPromptTemplate,
		analysisResponseSchema,
		strings.Join(ai.TopicTypes, ", "))
}
