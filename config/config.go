// Package config loads command definition files. A definition file lists the command prefixes,
// the language used for messages and, for every command, its aliases and argument schema.
//
// YAML, JSON with comments (JSONC) and HCL are accepted:
//
//	prefixes: ["!"]
//	commands:
//	  - name: ban
//	    aliases: [b]
//	    arguments:
//	      - name: target
//	        type: user
//	      - name: silent
//	        type: boolean
//	        short: s
//	        required: false
//	        flagOnly: true
//	      - name: reason
//	        type: string
//	        required: false
//	        rest: true
//
// The same file in HCL:
//
//	prefixes = ["!"]
//	command "ban" {
//	  aliases = ["b"]
//	  argument "target" { type = "user" }
//	  argument "silent" {
//	    type      = "boolean"
//	    short     = "s"
//	    required  = false
//	    flag_only = true
//	  }
//	  argument "reason" {
//	    type     = "string"
//	    required = false
//	    rest     = true
//	  }
//	}
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/napalu/botopt/errs"
)

// Format identifies the encoding of a definition file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// File is the decoded content of a definition file
type File struct {
	Prefixes   []string     `yaml:"prefixes" json:"prefixes" hcl:"prefixes,optional"`
	Language   string       `yaml:"language" json:"language" hcl:"language,optional"`
	QuoteStyle string       `yaml:"quoteStyle" json:"quoteStyle" hcl:"quote_style,optional"`
	Commands   []CommandDef `yaml:"commands" json:"commands" hcl:"command,block"`
}

// CommandDef describes one command
type CommandDef struct {
	Name        string        `yaml:"name" json:"name" hcl:"name,label"`
	Aliases     []string      `yaml:"aliases" json:"aliases" hcl:"aliases,optional"`
	Description string        `yaml:"description" json:"description" hcl:"description,optional"`
	Arguments   []ArgumentDef `yaml:"arguments" json:"arguments" hcl:"argument,block"`
}

// ArgumentDef describes one argument of a command. When Required is omitted the argument is
// required unless it has a default value.
type ArgumentDef struct {
	Name        string `yaml:"name" json:"name" hcl:"name,label"`
	Type        string `yaml:"type" json:"type" hcl:"type"`
	Required    *bool  `yaml:"required" json:"required" hcl:"required,optional"`
	Short       string `yaml:"short" json:"short" hcl:"short,optional"`
	Default     string `yaml:"default" json:"default" hcl:"default,optional"`
	Rest        bool   `yaml:"rest" json:"rest" hcl:"rest,optional"`
	FlagOnly    bool   `yaml:"flagOnly" json:"flagOnly" hcl:"flag_only,optional"`
	Description string `yaml:"description" json:"description" hcl:"description,optional"`
}

// IsRequired reports whether the argument is required
func (a ArgumentDef) IsRequired() bool {
	if a.Required == nil {
		return a.Default == ""
	}

	return *a.Required
}

// FormatFromPath maps a file extension to a Format
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".hcl":
		return FormatHCL, nil
	}

	return "", errs.ErrUnsupportedFormat.WithArgs(filepath.Ext(path))
}

// Load reads and decodes the definition file at path; the format follows the extension
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes data in the given format
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing yaml definitions: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parsing json definitions: %w", err)
		}
	case FormatHCL:
		if err := hclsimple.Decode("definitions.hcl", data, nil, &f); err != nil {
			return nil, fmt.Errorf("parsing hcl definitions: %w", err)
		}
	default:
		return nil, errs.ErrUnsupportedFormat.WithArgs(string(format))
	}

	return &f, nil
}
