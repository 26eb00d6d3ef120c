package chatbot

import (
	"sync"
	"sync/atomic"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

const Greeting = "Hello! I'm your ShopNest AI assistant. How can I help you?"

type Message struct {
	Text   string `json:"text"`
	Sender Sender `json:"sender"`
}

// Transcript is the only conversation memory; it is never sent to the
// responder. At most one reply may be pending at a time.
type Transcript struct {
	mu       sync.Mutex
	messages []Message
	pending  atomic.Bool
}

// NewTranscript starts a conversation with the bot greeting.
func NewTranscript() *Transcript {
	return &Transcript{messages: []Message{{Text: Greeting, Sender: SenderBot}}}
}

func (t *Transcript) append(m Message) {
	t.mu.Lock()
	t.messages = append(t.messages, m)
	t.mu.Unlock()
}

// Messages returns a copy of the conversation so far.
func (t *Transcript) Messages() []Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Message(nil), t.messages...)
}

// Pending reports whether a reply is being generated; input is disabled
// while it is.
func (t *Transcript) Pending() bool {
	return t.pending.Load()
}
