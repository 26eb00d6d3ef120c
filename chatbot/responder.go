package chatbot

import "context"

// Responder produces one bot reply for one user message.
type Responder interface {
	Respond(ctx context.Context, text string) (string, error)
}

// Describer writes marketing copy for a product.
type Describer interface {
	DescribeProduct(ctx context.Context, productName string) (string, error)
}

// ResponderFunc adapts a plain function to Responder.
type ResponderFunc func(ctx context.Context, text string) (string, error)

func (f ResponderFunc) Respond(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}
