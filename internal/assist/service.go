// Package assist orchestrates the two understanding paths: a configured
// language-model collaborator when one is available, and the deterministic
// rules engine otherwise. The engine is also the recovery path for every
// collaborator failure, so both entry points are total.
package assist

import (
	"context"

	"github.com/charmbracelet/log"

	"rapport/internal/contract"
	"rapport/internal/llm"
	"rapport/internal/rules"
)

type Service struct {
	collaborator llm.Provider // nil when running rules-only
	engine       *rules.Engine
	logger       *log.Logger
}

func NewService(collaborator llm.Provider, engine *rules.Engine, logger *log.Logger) *Service {
	if engine == nil {
		engine = rules.NewEngine()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Service{collaborator: collaborator, engine: engine, logger: logger}
}

// Provider names the understanding path that would be tried first.
func (s *Service) Provider() string {
	if s.collaborator != nil {
		return s.collaborator.Name()
	}
	return s.engine.Name()
}

// Interpret classifies one utterance. A collaborator error of any kind,
// transport or contract, downgrades to the rules engine.
func (s *Service) Interpret(ctx context.Context, text string) contract.IntentResult {
	requestID := RequestID(ctx)
	if s.collaborator != nil {
		res, err := s.collaborator.ProcessInteraction(ctx, text)
		if err == nil {
			s.logger.Debug("interpreted via collaborator",
				"request_id", requestID, "provider", s.collaborator.Name(), "intent", res.Intent)
			return res
		}
		s.logger.Warn("collaborator unavailable, using rules engine",
			"request_id", requestID, "provider", s.collaborator.Name(), "err", err)
	}
	res, _ := s.engine.ProcessInteraction(ctx, text)
	s.logger.Debug("interpreted via rules engine", "request_id", requestID, "intent", res.Intent)
	return res
}

// ResolveReminderReply interprets a free-text reply to a suggested
// reminder, with the same downgrade behavior as Interpret.
func (s *Service) ResolveReminderReply(ctx context.Context, text string, rc contract.ReminderContext) contract.ReminderResolution {
	requestID := RequestID(ctx)
	if s.collaborator != nil {
		res, err := s.collaborator.ResolveReminderResponse(ctx, text, rc)
		if err == nil {
			s.logger.Debug("reminder reply resolved via collaborator",
				"request_id", requestID, "provider", s.collaborator.Name(), "action", res.Action)
			return res
		}
		s.logger.Warn("collaborator unavailable, using rules engine",
			"request_id", requestID, "provider", s.collaborator.Name(), "err", err)
	}
	res, _ := s.engine.ResolveReminderResponse(ctx, text, rc)
	s.logger.Debug("reminder reply resolved via rules engine", "request_id", requestID, "action", res.Action)
	return res
}
