// Package studio runs one chat turn of the game studio against a session:
// it serialises requests per session, calls the AI flows and records the
// outcome in the transcript.
package studio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"whalestreet_ai_server/internal/gamecode"
	"whalestreet_ai_server/internal/session"
	"whalestreet_ai_server/internal/types"
)

var (
	// ErrNoGame is returned when an improvement is requested before any code exists.
	ErrNoGame = errors.New("no game to improve: generate a game first")
	// ErrEmptyInput is returned for blank prompts and requests.
	ErrEmptyInput = errors.New("input must not be blank")
)

// Transcript texts appended by the studio.
const (
	MsgGameReady      = "Your game is ready! Check out the code and preview."
	MsgGenerateFailed = "Sorry, I encountered an error. Please try again."
	MsgGameImproved   = "Game updated with your improvements!"
	MsgImproveFailed  = "Sorry, I encountered an error during improvement. Please try again."

	descriptionPrefix        = "Game Description: "
	reviewPrefix             = "Review: "
	updatedDescriptionPrefix = "Updated Game Description: "
)

// Generator is the set of AI flows the studio drives.
type Generator interface {
	GenerateGameCode(ctx context.Context, gameIdea string) (types.GameCode, error)
	ImproveGame(ctx context.Context, input types.ImproveInput) (types.ImproveOutput, error)
	EnhancePrompt(ctx context.Context, originalPrompt string) (string, error)
	GenerateGameBrief(ctx context.Context, input types.BriefInput) (string, error)
}

// Service drives chat turns for stored sessions.
type Service struct {
	store     session.Store
	generator Generator
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a Service over store and generator.
func NewService(store session.Store, generator Generator, logger *zap.Logger) *Service {
	return &Service{
		store:     store,
		generator: generator,
		logger:    logger.Named("Studio"),
		now:       time.Now,
	}
}

// Create starts a new session seeded with the welcome message.
func (s *Service) Create(ctx context.Context) (*session.State, error) {
	st, err := s.store.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	s.logger.Info("Session created", zap.String("session_id", st.ID))
	return st, nil
}

// Get returns the stored session or session.ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*session.State, error) {
	return s.store.Get(ctx, id)
}

// Generate replaces the session's game with a freshly generated one. On an AI
// failure the apology is still recorded and the saved state is returned along
// with the error.
func (s *Service) Generate(ctx context.Context, id, idea string) (*session.State, error) {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return nil, ErrEmptyInput
	}

	var genErr error
	st, err := s.withSession(ctx, id, func(st *session.State) {
		genErr = s.generate(ctx, st, idea)
	})
	if err != nil {
		return nil, err
	}
	return st, genErr
}

// Improve asks the model to modify the session's current game.
func (s *Service) Improve(ctx context.Context, id, request string) (*session.State, error) {
	request = strings.TrimSpace(request)
	if request == "" {
		return nil, ErrEmptyInput
	}

	var impErr error
	st, err := s.withSession(ctx, id, func(st *session.State) {
		impErr = s.improve(ctx, st, request)
	})
	if err != nil {
		return nil, err
	}
	return st, impErr
}

// Send routes a chat message: the first game is generated, later messages
// improve it.
func (s *Service) Send(ctx context.Context, id, text string) (*session.State, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	var turnErr error
	st, err := s.withSession(ctx, id, func(st *session.State) {
		if st.HasGame() {
			turnErr = s.improve(ctx, st, text)
		} else {
			turnErr = s.generate(ctx, st, text)
		}
	})
	if err != nil {
		return nil, err
	}
	return st, turnErr
}

// UpdateCode stores fragments edited by hand.
func (s *Service) UpdateCode(ctx context.Context, id string, code gamecode.FragmentSet) (*session.State, error) {
	return s.withSession(ctx, id, func(st *session.State) {
		st.Code = code
		st.UpdatedAt = s.now()
	})
}

// Preview renders the session's game as a standalone page.
func (s *Service) Preview(ctx context.Context, id string) (string, error) {
	st, err := s.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return gamecode.RenderPreview(st.Code), nil
}

// Enhance rewrites a short game idea into a richer prompt.
func (s *Service) Enhance(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyInput
	}
	return s.generator.EnhancePrompt(ctx, prompt)
}

// Brief writes a player-facing summary of a game.
func (s *Service) Brief(ctx context.Context, input types.BriefInput) (string, error) {
	if strings.TrimSpace(input.GameName) == "" && strings.TrimSpace(input.GameDescription) == "" {
		return "", ErrEmptyInput
	}
	return s.generator.GenerateGameBrief(ctx, input)
}

// withSession holds the session's in-flight marker while fn mutates a copy,
// then saves it.
func (s *Service) withSession(ctx context.Context, id string, fn func(st *session.State)) (*session.State, error) {
	token, err := s.store.Acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer func() {
		// The request context may already be cancelled here.
		if err := s.store.Release(context.WithoutCancel(ctx), id, token); err != nil {
			s.logger.Warn("Failed to release session", zap.String("session_id", id), zap.Error(err))
		}
	}()

	st, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fn(st)

	if err := s.store.Save(context.WithoutCancel(ctx), st); err != nil {
		return nil, fmt.Errorf("failed to save session %s: %w", id, err)
	}
	return st, nil
}

func (s *Service) generate(ctx context.Context, st *session.State, idea string) error {
	st.AddMessage(session.SenderUser, idea, s.now())
	st.Code = gamecode.FragmentSet{}
	st.Description = ""

	out, err := s.generator.GenerateGameCode(ctx, idea)
	if err != nil {
		s.logger.Error("Game generation failed", zap.String("session_id", st.ID), zap.Error(err))
		st.AddMessage(session.SenderAI, MsgGenerateFailed, s.now())
		return err
	}

	st.Code = gamecode.FragmentSet{Markup: out.HTMLCode, Styles: out.CSSCode, Script: out.JSCode}
	st.Description = out.GameDescription
	st.AddMessage(session.SenderAI, MsgGameReady, s.now())
	st.AddMessage(session.SenderAI, descriptionPrefix+out.GameDescription, s.now())

	s.logger.Info("Game generated", zap.String("session_id", st.ID))
	return nil
}

func (s *Service) improve(ctx context.Context, st *session.State, request string) error {
	if !st.HasGame() {
		return ErrNoGame
	}
	st.AddMessage(session.SenderUser, request, s.now())

	out, err := s.generator.ImproveGame(ctx, types.ImproveInput{
		CurrentGameCode: gamecode.FormatSet(st.Code),
		UserRequest:     request,
		GameDescription: st.Description,
	})
	if err != nil {
		s.logger.Error("Game improvement failed", zap.String("session_id", st.ID), zap.Error(err))
		st.AddMessage(session.SenderAI, MsgImproveFailed, s.now())
		return err
	}

	previous := st.Description
	st.Code = gamecode.Parse(out.ImprovedGameCode)
	st.Description = out.UpdatedGameDescription
	st.AddMessage(session.SenderAI, MsgGameImproved, s.now())
	st.AddMessage(session.SenderAI, reviewPrefix+out.Review, s.now())
	if out.UpdatedGameDescription != previous {
		st.AddMessage(session.SenderAI, updatedDescriptionPrefix+out.UpdatedGameDescription, s.now())
	}

	s.logger.Info("Game improved", zap.String("session_id", st.ID))
	return nil
}
