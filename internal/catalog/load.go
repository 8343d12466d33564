package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://triage-catalog.json"

// SupportedMajor is the only catalog major version this build understands.
const SupportedMajor = "v1"

// ErrUnsupportedVersion is returned when a catalog file declares a version
// this build cannot read.
var ErrUnsupportedVersion = errors.New("unsupported catalog version")

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func catalogSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		var doc any
		if err := json.Unmarshal(schemaJSON, &doc); err != nil {
			compileErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// LoadFile reads a catalog from a YAML (.yaml, .yml) or JSON (.json) file,
// validates it and builds a Provider.
func LoadFile(path string) (*Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = "yaml"
	case ".json":
		format = "json"
	default:
		return nil, fmt.Errorf("catalog %s: unsupported extension %q", path, filepath.Ext(path))
	}

	p, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a catalog document in the given format ("yaml" or "json"),
// checks it against the catalog schema and its version, and builds a Provider.
func Parse(data []byte, format string) (*Provider, error) {
	raw, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := catalogSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var def Definition
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := checkVersion(def.Version); err != nil {
		return nil, err
	}
	return NewProvider(def)
}

func toJSON(data []byte, format string) ([]byte, error) {
	switch format {
	case "json":
		return data, nil
	case "yaml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("convert YAML: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown catalog format %q", format)
	}
}

func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("%w: major %s, want %s", ErrUnsupportedVersion, major, SupportedMajor)
	}
	return nil
}

// Marshal encodes def in the given format ("yaml" or "json") in the shape
// Parse reads back.
func Marshal(def Definition, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(def, "", "  ")
	case "yaml":
		return yaml.Marshal(def)
	default:
		return nil, fmt.Errorf("unknown catalog format %q", format)
	}
}
