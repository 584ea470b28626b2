package qa

import "fmt"

const promptTemplate = "You are a helpful AI assistant. Please answer the following question clearly and concisely.\n\nQuestion: %s\n\nAnswer:"

// BuildPrompt wraps a normalized question in the fixed instruction template.
// Pure and deterministic; performs no validation of the input.
func BuildPrompt(question string) string {
	return fmt.Sprintf(promptTemplate, question)
}
