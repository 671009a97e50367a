package assistant

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"movie-assistant/internal/common/logger"
	"movie-assistant/internal/dispatch"
	"movie-assistant/internal/intent"
)

// stubProvider returns a canned classifier reply or error.
type stubProvider struct {
	reply string
	err   error
	calls int
}

func (s *stubProvider) Classify(ctx context.Context, userText string) (string, error) {
	s.calls++
	return s.reply, s.err
}

// stubWorkflow is a dispatch.Handler with a fixed outcome.
type stubWorkflow struct {
	result string
	err    error
	calls  int
}

func (s *stubWorkflow) Execute(ctx context.Context, params map[string]string) (string, error) {
	s.calls++
	return s.result, s.err
}

func newSession(provider *stubProvider, registry *dispatch.Registry, in string) (*Session, *bytes.Buffer) {
	log := logger.NewNoOpLogger()
	out := &bytes.Buffer{}
	return NewSession(provider, intent.NewParser(log), registry, log, strings.NewReader(in), out), out
}

func TestSession_HandleTurn_DispatchesKnownAction(t *testing.T) {
	workflow := &stubWorkflow{result: "The top 5 popular movies now:\n- X (Rating: 9)"}
	registry := dispatch.NewRegistry(logger.NewNoOpLogger())
	registry.Register(intent.ActionPopularMovies, nil, workflow)

	provider := &stubProvider{reply: `{"function_name": "get_popular_movies", "parameters": {}}`}
	session, _ := newSession(provider, registry, "")

	reply := session.HandleTurn(context.Background(), "what's popular?")

	assert.Equal(t, workflow.result, reply)
	assert.Equal(t, 1, workflow.calls)
	assert.Equal(t, 1, provider.calls)
}

func TestSession_HandleTurn_MalformedReplyDegrades(t *testing.T) {
	registry := dispatch.NewRegistry(logger.NewNoOpLogger())
	provider := &stubProvider{reply: "not valid json"}
	session, _ := newSession(provider, registry, "")

	reply := session.HandleTurn(context.Background(), "anything")

	assert.Equal(t, unsupportedMessage, reply)
}

func TestSession_HandleTurn_ClassifierFailureDegrades(t *testing.T) {
	workflow := &stubWorkflow{result: "should not run"}
	registry := dispatch.NewRegistry(logger.NewNoOpLogger())
	registry.Register(intent.ActionPopularMovies, nil, workflow)

	provider := &stubProvider{err: fmt.Errorf("model unavailable")}
	session, _ := newSession(provider, registry, "")

	reply := session.HandleTurn(context.Background(), "anything")

	assert.Equal(t, unsupportedMessage, reply)
	assert.Equal(t, 0, workflow.calls, "no workflow runs when the classifier is down")
}

func TestSession_Run_QuitTerminatesLoop(t *testing.T) {
	registry := dispatch.NewRegistry(logger.NewNoOpLogger())
	provider := &stubProvider{reply: `{"function_name": "unsupported_request", "parameters": {}}`}
	session, out := newSession(provider, registry, "hello\nQuit\n")

	err := session.Run(context.Background())

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "movie-related queries")
	assert.Contains(t, out.String(), unsupportedMessage)
	assert.Equal(t, 1, provider.calls, "quit must not reach the classifier")
}

func TestSession_Run_BlankLinesAreSkipped(t *testing.T) {
	registry := dispatch.NewRegistry(logger.NewNoOpLogger())
	provider := &stubProvider{reply: `{"function_name": "unsupported_request", "parameters": {}}`}
	session, _ := newSession(provider, registry, "\n   \nquit\n")

	err := session.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, provider.calls)
}
