package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		_, err := NewClient("https://example.invalid", "", "gemini-2.5-flash")
		assert.Error(t, err)
	})

	t.Run("empty model falls back to default", func(t *testing.T) {
		c, err := NewClient("https://example.invalid", "key", "")
		require.NoError(t, err)
		assert.Equal(t, "gemini-2.5-flash", c.Model())
	})
}

func TestGenerateRequestShape(t *testing.T) {
	var gotPath, gotKey string
	var gotBody GenerateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":" 4 "}]}}]}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "secret", "gemini-2.5-flash")
	require.NoError(t, err)

	resp, err := c.Generate(context.Background(), "what is 2+2?")
	require.NoError(t, err)

	assert.Equal(t, "/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "secret", gotKey)

	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "what is 2+2?", gotBody.Contents[0].Parts[0].Text)

	require.NotNil(t, gotBody.GenerationConfig)
	assert.Equal(t, 0.7, gotBody.GenerationConfig.Temperature)
	assert.Equal(t, 40, gotBody.GenerationConfig.TopK)
	assert.Equal(t, 0.95, gotBody.GenerationConfig.TopP)
	assert.Equal(t, 1024, gotBody.GenerationConfig.MaxOutputTokens)

	assert.Equal(t, "4", ExtractAnswer(resp))
}

func TestGenerateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "bad-key", "gemini-2.5-flash")
	require.NoError(t, err)

	resp, err := c.Generate(context.Background(), "hello")
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGenerateTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c, err := NewClient(srv.URL, "key", "gemini-2.5-flash")
	require.NoError(t, err)

	resp, err := c.Generate(context.Background(), "hello")
	assert.Nil(t, resp)
	assert.Error(t, err)
}
