package client

// Config provides environment-based configuration for the API client.
type Config struct {
	// BaseURL is the process-wide default base address for API requests.
	// Individual clients may override it with WithBaseURL to target other
	// backend groups.
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080/api"`
}
