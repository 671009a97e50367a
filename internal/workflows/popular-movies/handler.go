package popularmovies

import (
	"context"
	"fmt"
	"strings"

	"movie-assistant/internal/catalog"
	"movie-assistant/internal/common/errors"
	"movie-assistant/internal/common/logger"
)

const WorkflowName = "popular-movies"

// RequiredParams is empty: the popular listing takes no input.
var RequiredParams = []string{}

// Catalog is the slice of the catalog client this workflow needs.
type Catalog interface {
	PopularMovies(ctx context.Context) ([]catalog.Movie, error)
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

// Execute issues a single catalog call and renders the first MaxResults
// entries in the order the catalog returned them. No re-sorting.
func (h *Handler) Execute(ctx context.Context, params map[string]string) (string, error) {
	movies, err := h.catalog.PopularMovies(ctx)
	if err != nil {
		h.logger.Error("popular listing failed", map[string]interface{}{
			"error": err.Error(),
		})
		return "", errors.NewCatalogUnavailableError(err)
	}

	limit := h.config.MaxResults
	if len(movies) < limit {
		limit = len(movies)
	}

	var b strings.Builder
	b.WriteString("The top 5 popular movies now:")
	for _, movie := range movies[:limit] {
		fmt.Fprintf(&b, "\n- %s (Rating: %g)", movie.Title, movie.VoteAverage)
	}

	h.logger.Info("popular listing rendered", map[string]interface{}{
		"count": limit,
	})

	return b.String(), nil
}
