package chat

import (
	"context"

	"go.uber.org/zap"

	"github.com/omph-chaplaincy/parish-core/internal/config"
)

const (
	sourceKnowledgeBase = "ASK A PADRE AI - Catholic Knowledge Base"
	sourceMagisterium   = "ASK A PADRE AI - Magisterium"
)

// Service answers visitor questions. The curated knowledge base is
// always consulted first so its answers stay deterministic; the hosted
// provider only sees questions the knowledge base cannot cover.
type Service struct {
	provider answerProvider
	logger   *zap.Logger
}

func NewService(cfg config.ChatAIConfig, logger *zap.Logger) *Service {
	s := &Service{logger: logger}
	if cfg.APIKey != "" {
		s.provider = newOpenAIProvider(cfg)
	}
	return s
}

// Respond returns the answer for a message and the source that
// produced it. It never fails: provider errors degrade to the
// resources fallback.
func (s *Service) Respond(ctx context.Context, message string) (answer, source string) {
	if answer := findResponse(message); answer != "" {
		return answer, sourceKnowledgeBase
	}

	if s.provider != nil {
		answer, err := s.provider.Answer(ctx, message)
		if err == nil {
			return answer, sourceMagisterium
		}
		s.logger.Warn("answer provider failed, using fallback", zap.Error(err))
	}

	return fallbackResponse, sourceKnowledgeBase
}
