// Package config loads server, database and API-document settings from
// defaults, an optional config.yaml, and TASKS_-prefixed environment
// variables, then validates the result.
package config
