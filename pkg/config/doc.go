// Package config loads configuration structs from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for .env files:
//
//   - Load reads the default .env file once (if present) and parses the
//     environment into any struct annotated with `env` tags.
//   - Each configuration type is parsed once and cached for the lifetime of
//     the process.
//   - MustLoad panics on failure, for configuration required at startup.
//   - LoadEnv reads additional .env files; ResetCache forces re-parsing.
//
// # Usage
//
//	var cfg notify.Config
//	config.MustLoad(&cfg)
//	notify.SetShared(notify.NewFromConfig(cfg))
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer and can be checked with errors.Is.
package config
