package classifier

import "context"

// Provider defines the interface for the language-model classifier. The
// returned string is the model's raw textual reply; decoding it into an
// intent is the parser's job, not the provider's.
type Provider interface {
	Classify(ctx context.Context, userText string) (string, error)
}
