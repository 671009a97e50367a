// internal/workflows/popular-movies/config.go
package popularmovies

type Config struct {
	MaxResults int
}

func LoadConfig() *Config {
	return &Config{
		MaxResults: 5,
	}
}
