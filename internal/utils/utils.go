package utils

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// IsTransient reports whether an upstream AI error is likely to succeed if
// the caller tries again later (rate limits, server errors, timeouts).
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var openAIErr *openai.APIError
	if errors.As(err, &openAIErr) {
		return isRetryableStatus(openAIErr.HTTPStatusCode)
	}
	var requestErr *openai.RequestError
	if errors.As(err, &requestErr) {
		return isRetryableStatus(requestErr.HTTPStatusCode)
	}

	var geminiErr genai.APIError
	if errors.As(err, &geminiErr) {
		return isRetryableStatus(geminiErr.Code)
	}
	var geminiErrPtr *genai.APIError
	if errors.As(err, &geminiErrPtr) {
		return isRetryableStatus(geminiErrPtr.Code)
	}

	// Transport errors only expose their cause in the message.
	errMsg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"timeout",
		"connection reset by peer",
		"connection refused",
		"unexpected eof",
	} {
		if strings.Contains(errMsg, marker) {
			return true
		}
	}
	return false
}

func isRetryableStatus(code int) bool {
	return code >= http.StatusInternalServerError || code == http.StatusTooManyRequests
}

// FragmentKind identifies which part of a game a file holds.
type FragmentKind string

const (
	FragmentMarkup  FragmentKind = "markup"
	FragmentStyles  FragmentKind = "styles"
	FragmentScript  FragmentKind = "script"
	FragmentUnknown FragmentKind = ""
)

// DetermineFragmentKind maps a file name to the game fragment it carries.
func DetermineFragmentKind(filename string) FragmentKind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm":
		return FragmentMarkup
	case ".css":
		return FragmentStyles
	case ".js", ".mjs":
		return FragmentScript
	default:
		return FragmentUnknown
	}
}
