package main

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	BlugeFilepath  string `envconfig:"BLUGE_FILEPATH"`
	Room           string `envconfig:"ROOM" required:"true"`
	// INSPECT_KIND is chat, play or search
	Kind  string `envconfig:"INSPECT_KIND" default:"chat"`
	Query string `envconfig:"INSPECT_QUERY"`
	Limit int    `envconfig:"INSPECT_LIMIT" default:"50"`
	// INSPECT_COLOURS highlights deleted chats and disliked plays
	Colours bool `envconfig:"INSPECT_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
