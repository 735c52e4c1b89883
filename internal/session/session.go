// Package session keeps the per-user studio state (chat transcript, current
// game fragments and description) as an explicit value that request handlers
// load, modify and save, instead of ambient mutable UI state.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"whalestreet_ai_server/internal/gamecode"
)

var (
	// ErrNotFound is returned for unknown or expired session IDs.
	ErrNotFound = errors.New("session not found")
	// ErrBusy is returned by Acquire while another request holds the session.
	ErrBusy = errors.New("session has a request in flight")
)

// WelcomeMessage opens every new session.
const WelcomeMessage = "Welcome to WhaleStreetAI! Describe a game you'd like to create, and I'll help you build it."

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Message is one entry of the chat transcript.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// State is everything the studio knows about one user's game.
type State struct {
	ID          string               `json:"id"`
	Messages    []Message            `json:"messages"`
	Code        gamecode.FragmentSet `json:"code"`
	Description string               `json:"description"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// New returns a fresh state seeded with the welcome message.
func New(now time.Time) *State {
	s := &State{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.AddMessage(SenderAI, WelcomeMessage, now)
	return s
}

// AddMessage appends a message to the transcript.
func (s *State) AddMessage(sender Sender, text string, now time.Time) {
	s.Messages = append(s.Messages, Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Text:      text,
		CreatedAt: now,
	})
	s.UpdatedAt = now
}

// HasGame reports whether any fragment has content.
func (s *State) HasGame() bool {
	return !s.Code.IsEmpty()
}

// Clone returns a deep copy so callers never share the transcript slice.
func (s *State) Clone() *State {
	c := *s
	c.Messages = append([]Message(nil), s.Messages...)
	return &c
}

// Store persists session states and serialises requests per session.
type Store interface {
	Create(ctx context.Context) (*State, error)
	Get(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, s *State) error
	// Acquire marks the session as having a request in flight and returns the
	// token that owns the marker. It returns ErrBusy if one already is, and
	// ErrNotFound for unknown sessions.
	Acquire(ctx context.Context, id string) (string, error)
	// Release clears the marker only while token still owns it.
	Release(ctx context.Context, id, token string) error
}
