package utils_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"

	"whalestreet_ai_server/internal/utils"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "deadline", err: fmt.Errorf("call: %w", context.DeadlineExceeded), want: true},
		{name: "openai rate limited", err: &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}, want: true},
		{name: "openai server error", err: fmt.Errorf("wrapped: %w", &openai.APIError{HTTPStatusCode: 502}), want: true},
		{name: "openai bad request", err: &openai.APIError{HTTPStatusCode: http.StatusBadRequest, Message: "bad"}, want: false},
		{name: "openai request error", err: &openai.RequestError{HTTPStatusCode: 503, Err: errors.New("unavailable")}, want: true},
		{name: "gemini quota", err: fmt.Errorf("gemini generate content failed: %w", genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED"}), want: true},
		{name: "gemini unavailable", err: genai.APIError{Code: 503, Status: "UNAVAILABLE"}, want: true},
		{name: "gemini invalid argument", err: fmt.Errorf("wrapped: %w", genai.APIError{Code: 400, Message: "timeout must be positive", Status: "INVALID_ARGUMENT"}), want: false},
		{name: "status text alone is not enough", err: errors.New("Error 429, Message: quota"), want: false},
		{name: "connection reset", err: errors.New("read: connection reset by peer"), want: true},
		{name: "plain", err: errors.New("malformed"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.IsTransient(tt.err))
		})
	}
}

func TestDetermineFragmentKind(t *testing.T) {
	assert.Equal(t, utils.FragmentMarkup, utils.DetermineFragmentKind("index.HTML"))
	assert.Equal(t, utils.FragmentStyles, utils.DetermineFragmentKind("css/style.css"))
	assert.Equal(t, utils.FragmentScript, utils.DetermineFragmentKind("game.js"))
	assert.Equal(t, utils.FragmentUnknown, utils.DetermineFragmentKind("README.md"))
}
