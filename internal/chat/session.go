package chat

import (
	"context"
	"sync"

	"github.com/mkravets/planik/internal/llm"
	"github.com/mkravets/planik/internal/model"
)

const systemPrompt = "Ты - помощник для планирования задач и событий в ежедневнике. " +
	"Твоя задача - помогать пользователю заполнять ежедневник, извлекая информацию из его сообщений. " +
	"Отвечай кратко и по делу, фокусируясь на задачах планирования. " +
	"Если пользователь просит добавить что-то в ежедневник, подтверди добавление и спроси, нужно ли добавить что-то еще. " +
	"Если пользователь задает вопрос не связанный с планированием, вежливо напомни, что твоя основная задача - помогать с ежедневником."

// historyLimit caps the conversation at the system message plus the last
// ten entries; older entries are evicted first.
const historyLimit = 12

// RemoteClient is the fallback used when the rule table extracts nothing.
type RemoteClient interface {
	PlannerChat(ctx context.Context, messages []llm.Message) (llm.ChatResult, error)
}

// Session owns one conversation history. Pattern extraction runs first; the
// remote model only sees messages the rule table could not handle. Safe for
// concurrent use.
type Session struct {
	mu      sync.Mutex
	history []llm.Message
}

func NewSession() *Session {
	return &Session{
		history: []llm.Message{{Role: "system", Content: systemPrompt}},
	}
}

// Process extracts planner items from the message and returns them with an
// assistant reply. Remote failures never surface as errors; they become the
// fixed fallback reply.
func (s *Session) Process(ctx context.Context, remote RemoteClient, message string) ([]model.PlannerItem, string) {
	items := Extract(message)
	if len(items) > 0 {
		response := FormatResponse(items)
		s.mu.Lock()
		s.append(llm.Message{Role: "user", Content: message})
		s.append(llm.Message{Role: "assistant", Content: response})
		s.mu.Unlock()
		return items, response
	}

	return s.processRemote(ctx, remote, message)
}

func (s *Session) processRemote(ctx context.Context, remote RemoteClient, message string) ([]model.PlannerItem, string) {
	s.mu.Lock()
	s.append(llm.Message{Role: "user", Content: message})
	messages := make([]llm.Message, len(s.history))
	copy(messages, s.history)
	s.mu.Unlock()

	var (
		items    []model.PlannerItem
		response string
	)

	if remote == nil {
		response = replyUnprocessable
	} else if res, err := remote.PlannerChat(ctx, messages); err != nil {
		response = replyUnprocessable
	} else {
		switch {
		case res.ToolParseFailed:
			response = replyParseError
		case res.ToolCalled:
			items = normalizeRemoteItems(res.Items)
			response = FormatResponse(items)
		case res.Content != "":
			response = res.Content
		default:
			response = replyUnprocessable
		}
	}

	s.mu.Lock()
	s.append(llm.Message{Role: "assistant", Content: response})
	s.mu.Unlock()

	return items, response
}

// append adds a message and evicts the oldest non-system entries once the
// history exceeds the cap.
func (s *Session) append(msg llm.Message) {
	s.history = append(s.history, msg)
	if len(s.history) > historyLimit {
		trimmed := []llm.Message{s.history[0]}
		s.history = append(trimmed, s.history[len(s.history)-(historyLimit-2):]...)
	}
}

// HistoryLen reports the current history length, including the system
// message.
func (s *Session) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// normalizeRemoteItems applies the same time and type normalization the
// rule table guarantees: events get zero-padded HH:MM, tasks and notes
// carry no time.
func normalizeRemoteItems(items []model.PlannerItem) []model.PlannerItem {
	out := make([]model.PlannerItem, 0, len(items))
	for _, item := range items {
		switch item.Type {
		case model.ItemEvent:
			if item.Time != nil {
				t := NormalizeTime(*item.Time)
				item.Time = &t
			}
		case model.ItemTask, model.ItemNote:
			item.Time = nil
		default:
			continue
		}
		out = append(out, item)
	}
	return out
}
