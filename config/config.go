/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the yevu importer.
package config

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the importer configuration.
type Config struct {
	// Root is the project root used as the final resolution base.
	Root string `yaml:"root" json:"root"`

	// Extension is the expected stylesheet extension.
	Extension string `yaml:"extension" json:"extension"`

	// IncludePaths are additional resolution bases, in priority order.
	IncludePaths []PathSpec `yaml:"includePaths" json:"includePaths"`
}

// PathSpec represents one include path entry. It can be specified as a
// simple string or as an object with options.
type PathSpec struct {
	// Path is the directory path. Supports glob patterns unless Literal
	// is set.
	Path string `yaml:"path" json:"path"`

	// Literal disables glob expansion for this entry.
	Literal bool `yaml:"literal" json:"literal"`
}

// UnmarshalYAML handles both string and object forms for PathSpec.
func (p *PathSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		p.Path = node.Value
		return nil
	}

	type rawPathSpec PathSpec
	return node.Decode((*rawPathSpec)(p))
}

// UnmarshalJSON handles both string and object forms for PathSpec.
func (p *PathSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.Path = s
		return nil
	}

	type rawPathSpec PathSpec
	return json.Unmarshal(data, (*rawPathSpec)(p))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// NormalizedExtension returns the configured extension with a leading
// dot, or empty when unset.
func (c *Config) NormalizedExtension() string {
	if c.Extension == "" || strings.HasPrefix(c.Extension, ".") {
		return c.Extension
	}
	return "." + c.Extension
}
