// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// difftree application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the settings session.
	App App `envPrefix:"APP_"`

	// Tree selects the builder variant and the comparison mode the tree
	// starts with.
	Tree Tree `envPrefix:"TREE_"`

	// Serializer tunes the update serializer.
	Serializer Serializer `envPrefix:"SERIALIZER_"`

	// Source locates the comparison engine the tree is fed from.
	Source Source `envPrefix:"SOURCE_"`

	// Storage holds configuration for the settings database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server configures the optional local control endpoint.
	Server Server `envPrefix:"SERVER_"`

	// ChangeSets are the change sets registered at start-up. They are
	// usually given in the JSON file; the environment form is
	// CHANGE_SETS_<index>_NAME, CHANGE_SETS_<index>_PATTERNS and so on.
	ChangeSets []ChangeSet `envPrefix:"CHANGE_SETS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Session names the per-session settings under which view state is
	// persisted.
	// Env: APP_SESSION
	Session string `env:"SESSION"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Tree holds the host properties the tree starts with.
type Tree struct {
	// Builder is the builder variant: "hierarchical", "flat" or
	// "compressed".
	// Env: TREE_BUILDER
	Builder string `env:"BUILDER"`

	// Mode is the comparison mode: "both", "incoming", "outgoing" or
	// "conflicting".
	// Env: TREE_MODE
	Mode string `env:"MODE"`
}

// Serializer holds the dispatch delays and queue bound of the update
// serializer.
type Serializer struct {
	// DispatchDelay is how long label refreshes are coalesced.
	// Env: SERIALIZER_DISPATCH_DELAY
	DispatchDelay time.Duration `env:"DISPATCH_DELAY"`

	// BusyDispatchDelay replaces DispatchDelay while busy indicators change.
	// Env: SERIALIZER_BUSY_DISPATCH_DELAY
	BusyDispatchDelay time.Duration `env:"BUSY_DISPATCH_DELAY"`

	// QueueSize bounds the unit queue; 0 means unbounded.
	// Env: SERIALIZER_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`
}

// Source locates the comparison engine. Exactly one of Address and
// SnapshotFile is normally set; Address wins when both are.
type Source struct {
	// Address is the comparison engine HTTP endpoint, "host:port".
	// Env: SOURCE_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds a single request to the engine.
	// Env: SOURCE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PollInterval is how often the engine is polled for a new snapshot.
	// Env: SOURCE_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// SnapshotFile is a JSON file with a list of sync states, used instead
	// of a live engine.
	// Env: SOURCE_SNAPSHOT_FILE
	SnapshotFile string `env:"SNAPSHOT_FILE"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the settings database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite settings database.
type DB struct {
	// DSN is the SQLite database file (e.g. "difftree.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds the listen address of the control endpoint. The endpoint is
// disabled when Address is empty.
type Server struct {
	// Address is the control endpoint listen address, "host:port".
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`
}

// ChangeSet is the configuration form of a change-set definition.
type ChangeSet struct {
	Name       string   `env:"NAME" json:"name"`
	Patterns   []string `env:"PATTERNS" json:"patterns,omitempty"`
	Members    []string `env:"MEMBERS" json:"members,omitempty"`
	Directions []string `env:"DIRECTIONS" json:"directions,omitempty"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Unset fields receive defaults before validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
