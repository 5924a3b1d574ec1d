// Package config provides functionality for managing configuration options
// for the application using command-line flags, environment variables, and
// an optional JSON config file.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// StoreDir is the directory holding the persisted collection documents.
	StoreDir string `json:"store_dir"`

	// ContentDir is the directory of Markdown blog posts.
	ContentDir string `json:"content_dir"`

	// NotifyURL is the endpoint of the notification sender. Empty disables
	// the contact flow.
	NotifyURL string `json:"notify_url"`

	// AdminPassword unlocks the admin gate. Supplied only via environment
	// (ADMIN_PASSWORD) or .env, never via the JSON config file, and never
	// written back to disk.
	AdminPassword string `json:"-"`

	// Config is the path to the config file.
	Config string `json:"-"`
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.StoreDir, "s", ".portfolio", "directory for persisted collections")
	flag.StringVar(&options.ContentDir, "content", "content/posts", "directory of blog posts")
	flag.StringVar(&options.NotifyURL, "notify", "", "notification sender endpoint")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags, .env file, and environment variables
// to set configuration values. It returns a pointer to the Options struct
// containing the parsed configuration values.
func Parse() *Options {
	// Load .env into the process environment if present; a missing file is fine.
	_ = godotenv.Load()

	flag.Parse()

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	// Environment variables override flags and the config file.
	if v := os.Getenv("STORE_DIR"); v != "" {
		options.StoreDir = v
	}
	if v := os.Getenv("CONTENT_DIR"); v != "" {
		options.ContentDir = v
	}
	if v := os.Getenv("NOTIFY_URL"); v != "" {
		options.NotifyURL = v
	}
	options.AdminPassword = os.Getenv("ADMIN_PASSWORD")

	return options
}
