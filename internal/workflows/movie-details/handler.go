package moviedetails

import (
	"context"
	"fmt"

	"movie-assistant/internal/catalog"
	"movie-assistant/internal/common/errors"
	"movie-assistant/internal/common/logger"
)

const WorkflowName = "movie-details"

var RequiredParams = []string{"movie_name"}

// Catalog is the slice of the catalog client this workflow needs.
type Catalog interface {
	SearchMovie(ctx context.Context, query string) ([]catalog.Movie, error)
	MovieDetails(ctx context.Context, id int) (*catalog.Movie, error)
}

type Handler struct {
	catalog Catalog
	logger  logger.Logger
}

func NewHandler(cat Catalog, log logger.Logger) *Handler {
	return &Handler{
		catalog: cat,
		logger:  log.With(map[string]interface{}{"workflow": WorkflowName}),
	}
}

// Execute searches by title, then fetches the first result by id. The
// catalog's relevance ordering is authoritative: the first match wins and
// no local re-ranking happens. The second call is only issued after the
// search yields a usable identifier.
func (h *Handler) Execute(ctx context.Context, params map[string]string) (string, error) {
	movieName := params["movie_name"]

	results, err := h.catalog.SearchMovie(ctx, movieName)
	if err != nil {
		h.logger.Error("movie search failed", map[string]interface{}{
			"query": movieName,
			"error": err.Error(),
		})
		return "", errors.NewCatalogUnavailableError(err)
	}

	if len(results) == 0 {
		return "", errors.NewNotFoundError("movie", movieName)
	}

	movieID := results[0].ID
	h.logger.Debug("resolved movie id", map[string]interface{}{
		"query":   movieName,
		"movieId": movieID,
	})

	details, err := h.catalog.MovieDetails(ctx, movieID)
	if err != nil {
		h.logger.Error("movie details fetch failed", map[string]interface{}{
			"movieId": movieID,
			"error":   err.Error(),
		})
		return "", errors.NewCatalogUnavailableError(err)
	}

	return fmt.Sprintf(
		"Details of '%s' movie:\nOverview: %s\nVote average: %g/10\nRelease date: %s",
		details.Title, details.Overview, details.VoteAverage, details.ReleaseDate,
	), nil
}
