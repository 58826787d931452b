// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Loads strongly typed YAML configuration files.

// Package cfg manages config for logview
//
// Every package that needs config should define a strongly typed
// struct for it
//
// Example
//
//	type Config struct {
//	   BaseDir string `yaml:"BaseDir"`
//	}
//
//	var c Config
//	if err := cfg.Load("logview.yaml", &c); err != nil {
//	    return err
//	}
//
// The default reader looks for config files in /etc/logview/. Tests and
// the CLI's --config flag swap the reader with SetDefaultReader or
// FileReader.
package cfg

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultDir is where the default reader looks for config files.
const DefaultDir = "/etc/logview"

// the default read is a reader which looks for config files in
// DefaultDir
// nolint:gochecknoglobals
var defaultReader = DirReader(DefaultDir)

// Reader reads the config from the provided file
type Reader func(fileName string) ([]byte, error)

// Load reads the config and decodes it as YAML into ptr. Unknown
// fields are rejected.
func (r Reader) Load(fileName string, ptr interface{}) error {
	data, err := r(fileName)
	if err != nil {
		return err
	}

	if err := strictUnmarshal(data, ptr); err != nil {
		return errors.Wrapf(err, "failed to parse %s", fileName)
	}
	return nil
}

// strictUnmarshal decodes YAML rejecting unknown keys. An empty (or
// comment only) document leaves ptr untouched.
func strictUnmarshal(data []byte, ptr interface{}) error {
	if len(data) == 0 {
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(ptr); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Load uses the default config reader to load config
func Load(fileName string, ptr interface{}) error {
	return defaultReader.Load(fileName, ptr)
}

// SetDefaultReader sets the default reader.  Only meant for tests and
// dev environment overrides
func SetDefaultReader(f Reader) {
	defaultReader = f
}

// DefaultReader returns the current default reader. Only meant for
// tests and dev environment overrides
func DefaultReader() Reader {
	return defaultReader
}

// DirReader returns a Reader resolving file names relative to dir.
func DirReader(dir string) Reader {
	return func(fileName string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, fileName))
	}
}

// FileReader returns a Reader that ignores the requested file name and
// always reads path. Used when the user points at an explicit file.
func FileReader(path string) Reader {
	return func(string) ([]byte, error) {
		return os.ReadFile(path)
	}
}
