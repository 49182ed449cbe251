package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	gocache "github.com/patrickmn/go-cache"
	"github.com/unleashai/inquiries-backend/internal/config"
	"github.com/unleashai/inquiries-backend/internal/entity"
	"github.com/unleashai/inquiries-backend/internal/pkg/truncate"
	"go.uber.org/zap"
)

const systemPromptFormat = `You are a helpful and empathetic mental health assistant. Here are some similar examples of how therapists have responded to similar situations:
%s

Use these examples as guidance, but provide your own unique and personalized response.`

const reinforceMessage = "Remember to stay empathetic and ground your reply in the examples you were given."

// Usecase orchestrates one chat turn: retrieve similar prior exchanges,
// assemble the prompt, and start a streaming generation.
type Usecase struct {
	gateway GatewayConnector
	index   VectorIndexConnector
	cfg     config.ChatConfig
	cache   *gocache.Cache
	logger  *zap.Logger
}

func NewUsecase(
	gateway GatewayConnector,
	index VectorIndexConnector,
	cfg config.ChatConfig,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		gateway: gateway,
		index:   index,
		cfg:     cfg,
		cache:   gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		logger:  logger,
	}
}

// Chat returns either a raw vendor chunk stream to be re-framed or, when the
// gateway answers non-streaming, the complete response text.
func (u *Usecase) Chat(ctx context.Context, messages []entity.ChatMessage) (*entity.GenerateResult, error) {
	contextBlock := u.retrieveContext(ctx, messages)
	prompt := AssemblePrompt(messages, contextBlock, u.cfg.ReinforceSystem)
	return u.gateway.Generate(ctx, prompt, true)
}

// retrieveContext embeds the latest user turn and collects the top-K similar
// prior exchanges into a bounded text block. Every failure here degrades to
// an empty block: retrieval must never take the chat request down with it.
func (u *Usecase) retrieveContext(ctx context.Context, messages []entity.ChatMessage) string {
	query := latestUserTurn(messages)
	if query == "" {
		return ""
	}

	if cached, found := u.cache.Get(query); found {
		ctxzap.Debug(ctx, "retrieval cache hit")
		return cached.(string)
	}

	vector, err := u.gateway.Embed(ctx, query)
	if err != nil {
		ctxzap.Warn(ctx, "embedding failed, proceeding without context", zap.Error(err))
		return ""
	}

	matches, err := u.index.Query(ctx, vector, u.cfg.TopK)
	if err != nil {
		ctxzap.Warn(ctx, "vector query failed, proceeding without context", zap.Error(err))
		return ""
	}

	block := buildContextBlock(matches, u.cfg.ContextMaxBytes)

	ctxzap.Debug(ctx, "context retrieved",
		zap.Int("match_count", len(matches)),
		zap.Int("block_bytes", len(block)),
	)

	u.cache.SetDefault(query, block)
	return block
}

func latestUserTurn(messages []entity.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == entity.RoleUser {
			return messages[i].Content
		}
	}
	return ""
}

func buildContextBlock(matches []entity.VectorMatch, maxBytes int) string {
	var examples []string
	for _, m := range matches {
		if m.Metadata.Context == "" {
			continue
		}
		examples = append(examples, fmt.Sprintf("Patient: %s\nTherapist: %s\n", m.Metadata.Context, m.Metadata.Response))
	}
	return truncate.Bytes(strings.Join(examples, "\n"), maxBytes)
}

// AssemblePrompt prepends the instructional system message, carrying the
// retrieved context block, unless the conversation already starts with a
// system message. Reassembling an already-prefixed conversation is a no-op,
// so the operation is idempotent. When reinforce is set a short system
// reminder is appended after the conversation.
func AssemblePrompt(messages []entity.ChatMessage, contextBlock string, reinforce bool) []entity.ChatMessage {
	out := messages
	if len(messages) == 0 || messages[0].Role != entity.RoleSystem {
		out = make([]entity.ChatMessage, 0, len(messages)+2)
		out = append(out, entity.ChatMessage{
			Role:    entity.RoleSystem,
			Content: fmt.Sprintf(systemPromptFormat, contextBlock),
		})
		out = append(out, messages...)
	}

	if reinforce {
		withTail := make([]entity.ChatMessage, 0, len(out)+1)
		withTail = append(withTail, out...)
		out = append(withTail, entity.ChatMessage{
			Role:    entity.RoleSystem,
			Content: reinforceMessage,
		})
	}

	return out
}
