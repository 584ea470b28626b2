package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	got := BuildPrompt("what is go?")

	want := "You are a helpful AI assistant. Please answer the following question clearly and concisely.\n\nQuestion: what is go?\n\nAnswer:"
	assert.Equal(t, want, got)
	assert.Contains(t, got, "Question:")
	assert.Contains(t, got, "Answer:")
}

func TestBuildPromptDeterministic(t *testing.T) {
	assert.Equal(t, BuildPrompt("same input"), BuildPrompt("same input"))
}

func TestBuildPromptEmptyQuestion(t *testing.T) {
	got := BuildPrompt("")
	assert.Contains(t, got, "Question: \n")
	assert.Contains(t, got, "Answer:")
}
