package metadata

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/metadata.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Sentinel errors for the validation taxonomy, checked with errors.Is.
var (
	ErrNotFound = errors.New("metadata.json not found")
	ErrParse    = errors.New("metadata.json contains invalid JSON")
	ErrSchema   = errors.New("invalid metadata.json")
)

// Result carries a validated descriptor plus non-fatal warnings.
type Result struct {
	Metadata *Metadata
	Warnings []string
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("metadata.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("metadata.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate reads the descriptor from dir and validates it. On success the
// returned metadata carries the Type field normalized to uppercase. Errors
// match ErrNotFound, ErrParse, or ErrSchema.
func Validate(dir string) (*Result, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w in %s", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ValidateBytes(data)
}

// ValidateBytes validates raw descriptor bytes.
func ValidateBytes(data []byte) (*Result, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if err := schema.Validate(inst); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return nil, fmt.Errorf("%w: %s", ErrSchema, strings.Join(issueMessages(ve), "; "))
		}
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}

	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	kind, ok := ParseKind(m.Type)
	if !ok {
		return nil, fmt.Errorf("%w: invalid resource type %q; must be AGENT, DATASET, or MODEL",
			ErrSchema, strings.ToUpper(m.Type))
	}
	m.Type = string(kind)

	result := &Result{Metadata: &m}
	if m.Version != "" {
		if _, err := semver.NewVersion(strings.TrimPrefix(m.Version, "v")); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("version %q is not a valid semantic version", m.Version))
		}
	}
	return result, nil
}

// issueMessages flattens a validation error tree into leaf-level messages
// with their instance paths.
func issueMessages(ve *jsonschema.ValidationError) []string {
	var msgs []string
	collectIssues(ve, &msgs)
	if len(msgs) == 0 {
		return []string{ve.Error()}
	}
	return msgs
}

func collectIssues(ve *jsonschema.ValidationError, msgs *[]string) {
	if len(ve.Causes) == 0 {
		if ve.ErrorKind == nil {
			return
		}
		msg := ve.ErrorKind.LocalizedString(printer)
		if len(ve.InstanceLocation) > 0 {
			msg = "/" + strings.Join(ve.InstanceLocation, "/") + ": " + msg
		}
		*msgs = append(*msgs, msg)
		return
	}
	for _, cause := range ve.Causes {
		collectIssues(cause, msgs)
	}
}
