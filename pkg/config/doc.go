// Package config loads application configuration from environment variables
// into tagged structs, with optional .env files.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//	type AppConfig struct {
//	    Addr    string `env:"HTTP_ADDR" envDefault:":8080"`
//	    Cascade cascade.Config
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Each struct type is parsed once and cached; ResetCache clears the cache in
// tests. Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and
// can be matched with errors.Is.
package config
