// Package chatbot is the storefront shopping assistant: a per-session
// transcript in front of a pluggable responder.
package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const FallbackReply = "Sorry, I'm having trouble connecting. Please try again later."

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrReplyPending = errors.New("chat input disabled while a reply is pending")
)

// Assistant calls the responder once per message, without retry.
type Assistant struct {
	responder Responder
	logger    *zap.Logger
}

func NewAssistant(responder Responder, logger *zap.Logger) *Assistant {
	return &Assistant{responder: responder, logger: logger}
}

// Reply records the user message and the bot answer in t. Responder failures
// are logged and answered with FallbackReply.
func (a *Assistant) Reply(ctx context.Context, t *Transcript, text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyMessage
	}
	if !t.pending.CompareAndSwap(false, true) {
		return Message{}, ErrReplyPending
	}
	defer t.pending.Store(false)

	t.append(Message{Text: text, Sender: SenderUser})

	answer, err := a.responder.Respond(ctx, text)
	if err != nil {
		a.logger.Warn("chatbot responder failed", zap.Error(err))
		answer = FallbackReply
	}
	reply := Message{Text: answer, Sender: SenderBot}
	t.append(reply)
	return reply, nil
}

// DescribeProduct asks the responder for product copy when it can write it.
func (a *Assistant) DescribeProduct(ctx context.Context, productName string) (string, error) {
	d, ok := a.responder.(Describer)
	if !ok {
		return "", fmt.Errorf("responder %T cannot describe products", a.responder)
	}
	return d.DescribeProduct(ctx, productName)
}
