// Package dispatch maps intent actions onto workflow handlers. Adding an
// action is a registration, not a control-flow change.
package dispatch

import (
	"context"
	"time"

	"movie-assistant/internal/common/errors"
	"movie-assistant/internal/common/logger"
	"movie-assistant/internal/common/metrics"
	"movie-assistant/internal/intent"
)

// Handler is one workflow: a short linear pipeline from validated parameters
// to a rendered result. Handlers return failures as StandardError values and
// never panic across this boundary.
type Handler interface {
	Execute(ctx context.Context, params map[string]string) (string, error)
}

type action struct {
	requiredParams []string
	handler        Handler
}

// Registry holds the fixed action-to-workflow mapping. It is populated once
// at startup and read-only afterwards.
type Registry struct {
	actions map[string]action
	logger  logger.Logger
}

func NewRegistry(log logger.Logger) *Registry {
	return &Registry{
		actions: make(map[string]action),
		logger:  log.With(map[string]interface{}{"component": "dispatcher"}),
	}
}

// Register binds an action identifier to a handler and its required
// parameter list.
func (r *Registry) Register(name string, requiredParams []string, h Handler) {
	r.actions[name] = action{
		requiredParams: requiredParams,
		handler:        h,
	}
}

// Actions returns the registered action identifiers.
func (r *Registry) Actions() []string {
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	return names
}

// Dispatch validates the intent and invokes exactly one workflow.
// Unknown actions and missing required parameters short-circuit before any
// catalog call is issued. No retries happen at this layer.
func (r *Registry) Dispatch(ctx context.Context, in intent.Intent) (string, error) {
	entry, ok := r.actions[in.Action]
	if !ok {
		r.logger.Info("unsupported action", map[string]interface{}{
			"action": in.Action,
		})
		return "", errors.NewUnsupportedActionError(in.Action)
	}

	for _, name := range entry.requiredParams {
		if _, present := in.Parameters[name]; !present {
			r.logger.Warn("required parameter missing", map[string]interface{}{
				"action":    in.Action,
				"parameter": name,
			})
			return "", errors.NewMissingParameterError(name)
		}
	}

	start := time.Now()
	result, err := entry.handler.Execute(ctx, in.Parameters)
	metrics.WorkflowDuration.WithLabelValues(in.Action).Observe(time.Since(start).Seconds())

	if err != nil {
		code := "UNKNOWN"
		if se := errors.AsStandard(err); se != nil {
			code = string(se.Code)
		}
		metrics.WorkflowsFailed.WithLabelValues(in.Action, code).Inc()
		return "", err
	}

	metrics.WorkflowsCompleted.WithLabelValues(in.Action).Inc()
	return result, nil
}
