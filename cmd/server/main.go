package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"gemini-qa/internal/app"
	"gemini-qa/internal/httputil"
)

//go:embed index.html
var indexHTML []byte

type askRequest struct {
	Question string `json:"question" validate:"required"`
}

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	r := httputil.NewRouter(deps.Log)

	r.Get("/", homeHandler())
	r.Post("/ask", askHandler(deps))
	r.Get("/health", healthHandler(deps))

	addr := fmt.Sprintf(":%d", deps.Config.Port)
	deps.Log.Info("qa server listening", "addr", addr, "model", deps.Config.GeminiModel, "api_configured", deps.Config.APIConfigured())
	if err := http.ListenAndServe(addr, r); err != nil {
		deps.Log.Error("server error", "err", err)
	}
}

func homeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(indexHTML)
	}
}

func askHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.QA == nil {
			httputil.Fail(deps.Log, w, "API key not configured.", nil, http.StatusInternalServerError)
			return
		}

		var req askRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		req.Question = strings.TrimSpace(req.Question)
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.Fail(deps.Log, w, "Please enter a question", err, http.StatusBadRequest)
			return
		}

		res := deps.QA.Ask(r.Context(), req.Question)

		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"original_question":  res.Original,
			"processed_question": res.Processed,
			"answer":             res.Answer,
			"model":              deps.Config.GeminiModel,
			"timestamp":          time.Now().Format("2006-01-02 15:04:05"),
		})
	}
}

func healthHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"status":         "ok",
			"model":          deps.Config.GeminiModel,
			"api_configured": deps.QA != nil,
		})
	}
}
