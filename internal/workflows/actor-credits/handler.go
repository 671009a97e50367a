package actorcredits

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"movie-assistant/internal/catalog"
	"movie-assistant/internal/common/errors"
	"movie-assistant/internal/common/logger"
)

const WorkflowName = "actor-credits"

var RequiredParams = []string{"actor_name"}

// Catalog is the slice of the catalog client this workflow needs.
type Catalog interface {
	SearchPerson(ctx context.Context, query string) ([]catalog.Person, error)
	PersonMovieCredits(ctx context.Context, id int) ([]catalog.Credit, error)
}

type Handler struct {
	config  *Config
	catalog Catalog
	logger  logger.Logger
}

func NewHandler(config *Config, cat Catalog, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		catalog: cat,
		logger:  log.With(map[string]interface{}{"workflow": WorkflowName}),
	}
}

// Execute searches the person by name (first match wins), fetches their
// movie credits, and renders the top MaxResults by descending popularity.
// The sort must be stable: equal-popularity credits keep the catalog's
// original relative order.
func (h *Handler) Execute(ctx context.Context, params map[string]string) (string, error) {
	actorName := params["actor_name"]

	results, err := h.catalog.SearchPerson(ctx, actorName)
	if err != nil {
		h.logger.Error("person search failed", map[string]interface{}{
			"query": actorName,
			"error": err.Error(),
		})
		return "", errors.NewCatalogUnavailableError(err)
	}

	if len(results) == 0 {
		return "", errors.NewNotFoundError("actor", actorName)
	}

	person := results[0]
	h.logger.Debug("resolved person id", map[string]interface{}{
		"query":    actorName,
		"personId": person.ID,
	})

	credits, err := h.catalog.PersonMovieCredits(ctx, person.ID)
	if err != nil {
		h.logger.Error("credits fetch failed", map[string]interface{}{
			"personId": person.ID,
			"error":    err.Error(),
		})
		return "", errors.NewCatalogUnavailableError(err)
	}

	sort.SliceStable(credits, func(i, j int) bool {
		return credits[i].Popularity > credits[j].Popularity
	})

	limit := h.config.MaxResults
	if len(credits) < limit {
		limit = len(credits)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "'%s' (ID: %d)'s top movies:", actorName, person.ID)
	for _, credit := range credits[:limit] {
		fmt.Fprintf(&b, "\n- %s (Character: %s)", credit.Title, credit.Character)
	}

	h.logger.Info("credits rendered", map[string]interface{}{
		"personId": person.ID,
		"count":    limit,
	})

	return b.String(), nil
}
