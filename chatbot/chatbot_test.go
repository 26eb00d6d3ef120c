package chatbot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func scripted(t *testing.T) *ScriptedResponder {
	t.Helper()
	rules, err := LoadRules("")
	require.NoError(t, err)
	return NewScriptedResponder(rules, 0)
}

func TestRulesMatch(t *testing.T) {
	rules, err := LoadRules("")
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"How do I TRACK ORDER 12?", "To track your order, please go to the Profile section and click on 'Order History'."},
		{"I want to return my jacket", "Our return policy allows returns within 30 days of purchase. You can initiate a return from your 'Order History' page."},
		{"hello there", "Hello! I'm ShopNest's AI assistant. How can I help you with your shopping today?"},
		{"Hi", "Hello! I'm ShopNest's AI assistant. How can I help you with your shopping today?"},
		{"price of earbuds?", "I can help with order tracking, return policies, and product suggestions. What are you looking for?"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Match(tt.in))
		})
	}
}

func TestLoadRulesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - keywords: [shipping]\n    reply: Free over $50.\nfallback: Ask me anything.\n"), 0o600))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, "Free over $50.", rules.Match("Shipping cost?"))
	assert.Equal(t, "Ask me anything.", rules.Match("hmm"))

	require.NoError(t, os.WriteFile(path, []byte("rules: []\n"), 0o600))
	_, err = LoadRules(path)
	assert.Error(t, err)

	_, err = LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestAssistantReply(t *testing.T) {
	a := NewAssistant(scripted(t), zap.NewNop())
	tr := NewTranscript()

	reply, err := a.Reply(context.Background(), tr, "hello")
	require.NoError(t, err)
	assert.Equal(t, SenderBot, reply.Sender)

	msgs := tr.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, Message{Text: Greeting, Sender: SenderBot}, msgs[0])
	assert.Equal(t, Message{Text: "hello", Sender: SenderUser}, msgs[1])
	assert.Equal(t, reply, msgs[2])
	assert.False(t, tr.Pending())
}

func TestAssistantReply_EmptyInputIgnored(t *testing.T) {
	a := NewAssistant(scripted(t), zap.NewNop())
	tr := NewTranscript()

	_, err := a.Reply(context.Background(), tr, "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Len(t, tr.Messages(), 1)
}

func TestAssistantReply_FailureUsesFallback(t *testing.T) {
	calls := 0
	failing := ResponderFunc(func(context.Context, string) (string, error) {
		calls++
		return "", errors.New("network down")
	})
	a := NewAssistant(failing, zap.NewNop())
	tr := NewTranscript()

	reply, err := a.Reply(context.Background(), tr, "track order")
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply.Text)
	assert.Equal(t, 1, calls, "no retry")
	assert.Len(t, tr.Messages(), 3)
}

func TestAssistantReply_RejectsWhilePending(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	slow := ResponderFunc(func(ctx context.Context, text string) (string, error) {
		close(started)
		<-release
		return "done", nil
	})
	a := NewAssistant(slow, zap.NewNop())
	tr := NewTranscript()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := a.Reply(context.Background(), tr, "first")
		assert.NoError(t, err)
	}()

	<-started
	assert.True(t, tr.Pending())
	_, err := a.Reply(context.Background(), tr, "second")
	assert.ErrorIs(t, err, ErrReplyPending)

	close(release)
	wg.Wait()

	msgs := tr.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[1].Text)
	assert.Equal(t, "done", msgs[2].Text)
}

func TestScriptedResponder_Latency(t *testing.T) {
	rules, err := LoadRules("")
	require.NoError(t, err)
	r := NewScriptedResponder(rules, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Respond(ctx, "hi")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDescribeProduct(t *testing.T) {
	a := NewAssistant(scripted(t), zap.NewNop())
	desc, err := a.DescribeProduct(context.Background(), "Quantum Earbuds")
	require.NoError(t, err)
	assert.Contains(t, desc, "This is a premium Quantum Earbuds that offers")

	plain := NewAssistant(ResponderFunc(func(context.Context, string) (string, error) { return "", nil }), zap.NewNop())
	_, err = plain.DescribeProduct(context.Background(), "x")
	assert.Error(t, err)
}
