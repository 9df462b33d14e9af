/*
Package config holds the settings of the substep effects engine and its
command-line driver.

Settings may be read from YAML:

    attribute_prefix: data-
    substep_class: substep
    transition: opacity 0.5s
    warnings: true

Keys not given keep their default value; unknown keys are an error.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned for configurations the engine cannot work with.
var ErrInvalid = errors.New("invalid configuration")

// Config collects settings for markup conventions and animation.
type Config struct {
	AttributePrefix string `yaml:"attribute_prefix"` // prefix of declarative attributes, e.g. "data-"
	StepClass       string `yaml:"step_class"`       // class of slides
	SubstepClass    string `yaml:"substep_class"`    // class of substep markers
	ActiveClass     string `yaml:"active_class"`     // role flag of the substep at the cursor
	VisibleClass    string `yaml:"visible_class"`    // role flag of substeps already passed
	Transition      string `yaml:"transition"`       // transition set on animated opacity changes
	Warnings        bool   `yaml:"warnings"`         // development-mode warnings
}

// Default returns the conventions of impress.js presentations.
func Default() Config {
	return Config{
		AttributePrefix: "data-",
		StepClass:       "step",
		SubstepClass:    "substep",
		ActiveClass:     "substep-active",
		VisibleClass:    "substep-visible",
		Transition:      "opacity 1s",
	}
}

// Attr returns the full name of a declarative attribute, e.g.
//
//    Attr("show-only")  =>  "data-show-only"
//
func (c Config) Attr(name string) string {
	return c.AttributePrefix + name
}

// Validate checks that all role classes are set.
func (c Config) Validate() error {
	for key, v := range map[string]string{
		"step_class":    c.StepClass,
		"substep_class": c.SubstepClass,
		"active_class":  c.ActiveClass,
		"visible_class": c.VisibleClass,
	} {
		if v == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalid, key)
		}
	}
	if c.ActiveClass == c.VisibleClass {
		return fmt.Errorf("%w: active_class and visible_class must differ", ErrInvalid)
	}
	return nil
}

// Parse reads a YAML configuration, starting from Default().
func Parse(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads a YAML configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(bytes.NewReader(data))
}
