package qa

import (
	"context"
	"log/slog"

	"gemini-qa/internal/gemini"
)

// Generator is the single remote call the pipeline depends on.
// *gemini.Client implements it; tests use gemini.MockGenerator.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*gemini.GenerateResponse, error)
}

// Result carries one answered question back to the caller.
type Result struct {
	Original  string
	Processed string
	Answer    string
}

// Service runs the linear pipeline. It holds no mutable state and is safe
// for concurrent use.
type Service struct {
	policy Policy
	gen    Generator
	log    *slog.Logger
}

// NewService wires the normalization policy and the generator together.
func NewService(policy Policy, gen Generator, log *slog.Logger) *Service {
	return &Service{
		policy: policy,
		gen:    gen,
		log:    log,
	}
}

// Ask normalizes the question, sends the built prompt and extracts the
// answer. Remote failures surface as an "Error: ..." answer string; Ask
// never returns an error and never panics.
func (s *Service) Ask(ctx context.Context, question string) Result {
	processed := s.policy.Normalize(question)
	prompt := BuildPrompt(processed)

	resp, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.log.Error("gemini call failed", "err", err)
		return Result{
			Original:  question,
			Processed: processed,
			Answer:    "Error: " + err.Error(),
		}
	}
	return Result{
		Original:  question,
		Processed: processed,
		Answer:    gemini.ExtractAnswer(resp),
	}
}
