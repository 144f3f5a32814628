// Package config holds the small shared pieces of command configuration:
// environment parsing through caarlos0/env and the exit statuses with the Fail helper every command ends through.
package config
