package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// envFlags maps flag names to the environment variables that may seed them.
var envFlags = map[string]string{
	"port":         "PORT",
	"data_dir":     "MOCKDATA_DIR",
	"upstream_url": "MOCKDATA_UPSTREAM_URL",
}

// loadEnv reads .env in development only.
func loadEnv() error {
	if os.Getenv("GO_ENV") != "development" {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}
	return nil
}

// applyEnv sets flags from the environment unless given on the command line.
func applyEnv(fs *flag.FlagSet, getenv func(string) string) error {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for name, env := range envFlags {
		v := getenv(env)
		if v == "" || set[name] || fs.Lookup(name) == nil {
			continue
		}
		if err := fs.Set(name, v); err != nil {
			return fmt.Errorf("%s=%q: %w", env, v, err)
		}
	}
	return nil
}
