// Package config loads typed configuration structs from environment
// variables, with optional .env bootstrap for local development.
//
// Each component of the application declares its own Config struct with
// `env:` tags and loads it independently:
//
//	var mongoCfg mongo.Config
//	config.MustLoad(&mongoCfg)
package config
