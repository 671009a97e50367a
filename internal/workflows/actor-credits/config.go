// internal/workflows/actor-credits/config.go
package actorcredits

type Config struct {
	MaxResults int
}

func LoadConfig() *Config {
	return &Config{
		MaxResults: 5,
	}
}
