// Package config provides type-safe environment variable loading with
// caching. Each configuration type is loaded once and cached for subsequent
// calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/adminforge/adminsdk/core/config"
//
//	type APIConfig struct {
//		BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080/api"`
//	}
//
//	func main() {
//		var cfg APIConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime;
// later Load calls for the same type return the cached value. Different
// types are cached independently.
package config
