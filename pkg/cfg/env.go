// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Support for loading env vars as strings

package cfg

import (
	"os"

	"github.com/pkg/errors"
)

// EnvString looks up a string from the environment.
func EnvString(name string) (string, error) {
	var (
		ok  bool
		val string
	)
	val, ok = os.LookupEnv(name)
	if !ok {
		return "", errors.Errorf("%q environment variable not set", name)
	}
	return val, nil
}

// EnvOverride sets *dst to the value of the named environment variable
// when it is set and non-empty.
func EnvOverride(name string, dst *string) {
	if val, err := EnvString(name); err == nil && val != "" {
		*dst = val
	}
}
