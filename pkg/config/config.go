// Package config provides YAML configuration loading with environment
// variable overrides.
//
// Files are expanded with os.ExpandEnv before parsing, then any struct field
// carrying an `env:"NAME"` tag is overridden from the environment when the
// variable is set.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML configuration file into out and applies env overrides.
func Load(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), out); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	applyEnvOverrides(out)
	return nil
}

// LoadOrDefault loads config from path if it exists; a missing file leaves
// out untouched (env overrides still apply).
func LoadOrDefault(path string, out any) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		applyEnvOverrides(out)
		return nil
	}
	return Load(path, out)
}

// Save writes the configuration back out as YAML.
func Save(path string, in any) error {
	data, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

var durationType = reflect.TypeOf(time.Duration(0))

// applyEnvOverrides sets struct fields from environment variables named by
// their `env` struct tag, recursing into nested structs.
func applyEnvOverrides(v any) {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return
	}

	t := val.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := val.Field(i)

		if fieldVal.Kind() == reflect.Struct {
			if fieldVal.CanAddr() {
				applyEnvOverrides(fieldVal.Addr().Interface())
			}
			continue
		}

		envTag := field.Tag.Get("env")
		if envTag == "" {
			continue
		}
		envVal, ok := os.LookupEnv(envTag)
		if !ok || !fieldVal.CanSet() {
			continue
		}

		setField(fieldVal, envVal)
	}
}

func setField(fieldVal reflect.Value, raw string) {
	// Durations accept the usual "45s" / "1m30s" forms.
	if fieldVal.Type() == durationType {
		if d, err := time.ParseDuration(raw); err == nil {
			fieldVal.SetInt(int64(d))
		}
		return
	}

	switch fieldVal.Kind() {
	case reflect.String:
		fieldVal.SetString(raw)
	case reflect.Int, reflect.Int32, reflect.Int64:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			fieldVal.SetInt(n)
		}
	case reflect.Float64:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			fieldVal.SetFloat(f)
		}
	case reflect.Bool:
		fieldVal.SetBool(strings.EqualFold(raw, "true") || raw == "1")
	}
}
