// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package envflag provides a wrapper around the standard flag package, allowing
// flag defaults to be overridden by environment variables.
package envflag

import (
	"flag"
	"strconv"
)

// Type is a constraint that permits only types supported by envflag package.
type Type interface {
	int | bool | string
}

// Value sets up a flag with the given name, default value, and usage
// information.
//
// If the environment variable specified by envName is set to a value that
// parses as T, it overrides the flag's default value. The flag itself, when
// given on the command line, takes precedence over both.
func Value[T Type](
	fs *flag.FlagSet, getenv func(string) string,
	name, envName string, value T, usage string,
) *T {
	result := new(T)
	*result = value
	if envValue := getenv(envName); envValue != "" {
		if parsed, err := parse[T](envValue); err == nil {
			*result = parsed
		}
	}

	usage += " Can be overridden by " + envName + " environment variable."
	fs.Var(&flagValue[T]{value: result}, name, usage)
	return result
}

func parse[T Type](s string) (T, error) {
	var (
		zero T
		v    any
		err  error
	)
	switch any(zero).(type) {
	case int:
		v, err = strconv.Atoi(s)
	case bool:
		v, err = strconv.ParseBool(s)
	case string:
		v = s
	}
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

type flagValue[T Type] struct {
	value *T
}

func (f *flagValue[T]) String() string {
	if f.value == nil {
		return ""
	}
	switch v := any(*f.value).(type) {
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	}
	return ""
}

func (f *flagValue[T]) Set(s string) error {
	v, err := parse[T](s)
	if err != nil {
		return err
	}
	*f.value = v
	return nil
}

// IsBoolFlag lets boolean flags be set without a value, like "-flag".
func (f *flagValue[T]) IsBoolFlag() bool {
	_, ok := any(f.value).(*bool)
	return ok
}
