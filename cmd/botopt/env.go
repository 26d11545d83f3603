package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/napalu/botopt/resolve"
	"github.com/napalu/botopt/types"
)

// environmentFile is the YAML layout of --env: one id-to-entity map per mention kind
//
//	users:
//	  "80351110224678912": alice
//	channels:
//	  "222079895583457280": { name: general, topic: chatter }
type environmentFile struct {
	Users    map[string]any `yaml:"users"`
	Channels map[string]any `yaml:"channels"`
	Roles    map[string]any `yaml:"roles"`
}

func loadEnvironment(path string) (*resolve.MapEnvironment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return parseEnvironment(data)
}

func parseEnvironment(data []byte) (*resolve.MapEnvironment, error) {
	var f environmentFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	env := resolve.NewMapEnvironment()
	for kind, entries := range map[types.MentionKind]map[string]any{
		types.MentionUser:    f.Users,
		types.MentionChannel: f.Channels,
		types.MentionRole:    f.Roles,
	} {
		for id, v := range entries {
			env.Add(kind, id, v)
		}
	}

	return env, nil
}
