// Package assistant runs the interactive read loop: one user turn is fully
// processed (classification, dispatch, workflow, render) before the next
// input is accepted.
package assistant

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"movie-assistant/internal/classifier"
	"movie-assistant/internal/common/logger"
	"movie-assistant/internal/common/metrics"
	"movie-assistant/internal/dispatch"
	"movie-assistant/internal/intent"
)

const quitKeyword = "quit"

const banner = "This assistant can help you with movie-related queries using TMDB data.\n" +
	"You can ask about popular movies, movie details, and actor credits.\n" +
	"Quit by typing 'quit'."

// Session owns one interactive conversation. No state crosses turns.
type Session struct {
	provider classifier.Provider
	parser   *intent.Parser
	registry *dispatch.Registry
	logger   logger.Logger
	in       io.Reader
	out      io.Writer
}

func NewSession(provider classifier.Provider, parser *intent.Parser, registry *dispatch.Registry, log logger.Logger, in io.Reader, out io.Writer) *Session {
	return &Session{
		provider: provider,
		parser:   parser,
		registry: registry,
		logger:   log.With(map[string]interface{}{"component": "session"}),
		in:       in,
		out:      out,
	}
}

// Run blocks until the quit keyword or end of input.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, banner)

	youLabel := color.New(color.FgCyan, color.Bold).Sprint("You:")
	assistantLabel := color.New(color.FgGreen, color.Bold).Sprint("Assistant:")

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprintf(s.out, "\n%s ", youLabel)
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, quitKeyword) {
			break
		}

		reply := s.HandleTurn(ctx, line)
		fmt.Fprintf(s.out, "\n%s %s\n", assistantLabel, reply)
	}

	return scanner.Err()
}

// HandleTurn processes one utterance end to end and always returns a
// rendered reply. Classifier failures degrade to the unsupported fallback
// instead of surfacing; the loop must stay available when the classifier
// misbehaves.
func (s *Session) HandleTurn(ctx context.Context, userText string) string {
	turnID := uuid.NewString()
	log := s.logger.With(map[string]interface{}{"turnId": turnID})

	var in intent.Intent
	raw, err := s.provider.Classify(ctx, userText)
	if err != nil {
		log.Warn("classifier call failed, degrading to fallback", map[string]interface{}{
			"error": err.Error(),
		})
		in = s.parser.Fallback()
	} else {
		in = s.parser.Parse(raw)
	}

	metrics.IntentsClassified.WithLabelValues(in.Action).Inc()
	log.Info("intent resolved", map[string]interface{}{
		"action":        in.Action,
		"parameterKeys": parameterKeys(in.Parameters),
	})

	result, err := s.registry.Dispatch(ctx, in)
	return Render(result, err)
}

func parameterKeys(params map[string]string) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
