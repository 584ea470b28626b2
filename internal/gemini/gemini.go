// Package gemini speaks the generativelanguage generateContent REST API.
package gemini

import "strings"

// GenerateRequest is the JSON body of a generateContent call.
type GenerateRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content groups the parts of one conversation turn.
type Content struct {
	Parts []Part `json:"parts"`
}

// Part carries a single text fragment.
type Part struct {
	Text string `json:"text"`
}

// GenerationConfig holds the fixed sampling parameters sent with every request.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// GenerateResponse is the provider reply: either candidates or an error object.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
	Error      *APIError   `json:"error,omitempty"`
}

// Candidate is one alternative answer; only the first is used.
type Candidate struct {
	Content *Content `json:"content"`
}

// APIError is the provider's error shape, carried inside a response body.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// AnswerFallback is returned whenever the answer text cannot be located
// in an otherwise well-formed response.
const AnswerFallback = "Unable to get a valid response from Gemini"

// ExtractAnswer walks candidates -> content -> parts -> text and returns the
// trimmed answer. Every absent or empty step along the path yields
// AnswerFallback; an error object yields its message prefixed with "Error: ".
// It never panics on any response shape.
func ExtractAnswer(resp *GenerateResponse) string {
	if resp == nil {
		return AnswerFallback
	}
	if resp.Error != nil {
		return "Error: " + resp.Error.Message
	}
	if len(resp.Candidates) == 0 {
		return AnswerFallback
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return AnswerFallback
	}
	text := strings.TrimSpace(content.Parts[0].Text)
	if text == "" {
		return AnswerFallback
	}
	return text
}
