// Package config loads typed configuration structs from environment
// variables (and an optional .env file) using caarlos0/env field tags.
// Each struct type is parsed once per process and cached.
//
//	var dbCfg pg.Config
//	config.MustLoad(&dbCfg)
package config
