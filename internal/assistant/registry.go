// internal/assistant/registry.go
package assistant

import (
	"movie-assistant/internal/catalog"
	"movie-assistant/internal/common/logger"
	"movie-assistant/internal/dispatch"
	"movie-assistant/internal/intent"
	actorcredits "movie-assistant/internal/workflows/actor-credits"
	moviedetails "movie-assistant/internal/workflows/movie-details"
	popularmovies "movie-assistant/internal/workflows/popular-movies"
)

// BuildRegistry wires the fixed set of workflows onto their action names.
func BuildRegistry(cat *catalog.Client, log logger.Logger) *dispatch.Registry {
	registry := dispatch.NewRegistry(log)

	registry.Register(
		intent.ActionPopularMovies,
		popularmovies.RequiredParams,
		popularmovies.NewHandler(popularmovies.LoadConfig(), cat, log),
	)
	registry.Register(
		intent.ActionMovieDetails,
		moviedetails.RequiredParams,
		moviedetails.NewHandler(cat, log),
	)
	registry.Register(
		intent.ActionActorCredits,
		actorcredits.RequiredParams,
		actorcredits.NewHandler(actorcredits.LoadConfig(), cat, log),
	)

	return registry
}
