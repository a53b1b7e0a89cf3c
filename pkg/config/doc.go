// Package config loads environment-driven configuration structs.
//
// Structs declare their variables with caarlos0/env tags. The first Load call
// reads a .env file from the working directory when present (via
// joho/godotenv; existing process variables win), and each struct type is
// parsed once and cached for the lifetime of the process:
//
//	type HTTP struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg HTTP
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Parse skips the cache and is meant for tests and one-off commands.
package config
