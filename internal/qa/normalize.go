// Package qa holds the question pipeline: normalize, build the prompt,
// call the model and extract the answer.
package qa

import (
	"regexp"
	"strings"
)

// DefaultPunctuation is the canonical allowed punctuation set.
const DefaultPunctuation = "?.,!+-*/"

// Policy describes which punctuation survives normalization. Letters,
// digits, underscore and whitespace are always kept.
type Policy struct {
	disallowed *regexp.Regexp
}

// NewPolicy compiles a policy keeping the given punctuation runes.
func NewPolicy(punctuation string) Policy {
	var class strings.Builder
	class.WriteString(`[^\p{L}\p{N}_\s`)
	for _, r := range punctuation {
		class.WriteByte('\\')
		class.WriteRune(r)
	}
	class.WriteByte(']')
	return Policy{disallowed: regexp.MustCompile(class.String())}
}

// Normalize lowercases the question, strips runes outside the allowed set,
// collapses whitespace runs to single spaces and trims the ends.
// Idempotent: normalizing an already normalized string is a no-op.
func (p Policy) Normalize(question string) string {
	s := strings.ToLower(question)
	s = p.disallowed.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}
