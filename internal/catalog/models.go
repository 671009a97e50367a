// internal/catalog/models.go
package catalog

// Movie is the normalized subset of a catalog movie record. Records are
// ephemeral and never persisted.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date"`
	Popularity  float64 `json:"popularity"`
}

// Person is the normalized subset of a catalog person record.
type Person struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Credit is one cast entry from a person's movie credits.
type Credit struct {
	Title      string  `json:"title"`
	Character  string  `json:"character"`
	Popularity float64 `json:"popularity"`
}

type movieListResponse struct {
	Results []Movie `json:"results"`
}

type personListResponse struct {
	Results []Person `json:"results"`
}

type creditsResponse struct {
	Cast []Credit `json:"cast"`
}
