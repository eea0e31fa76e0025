// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for optional .env files and
// github.com/caarlos0/env/v11 for parsing. Each package owns an env-tagged
// Config struct with defaults; the application composes them:
//
//	type Config struct {
//		Server  httpserver.Config
//		Session session.Config
//	}
//
//	cfg := config.MustLoad[Config]()
//
// Nested structs are parsed recursively. Variables from the process
// environment take precedence over values from .env files.
package config
