// internal/intent/intent.go
package intent

// Recognized action identifiers. Unrecognized identifiers are preserved
// verbatim for diagnostics but dispatch to the unsupported outcome.
const (
	ActionPopularMovies = "get_popular_movies"
	ActionMovieDetails  = "get_movie_details"
	ActionActorCredits  = "get_actor_credits"

	// ActionUnsupported is the sentinel the classifier is instructed to use,
	// and the value every undecodable reply degrades to.
	ActionUnsupported = "unsupported_request"
)

// Intent is the validated action+parameters value derived from a classifier
// reply. Action is never empty; Parameters is never nil.
type Intent struct {
	Action     string            `json:"function_name"`
	Parameters map[string]string `json:"parameters"`
}
