package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
)

// SupportedSchema is the schema_version range this build understands.
const SupportedSchema = "^1"

var (
	// ErrNotMapping is returned when the config document is not a mapping.
	ErrNotMapping = errors.New("config document is not a mapping")
	// ErrInvalidConfig is returned when the config fails schema validation.
	ErrInvalidConfig = errors.New("config does not match schema")
	// ErrUnsupportedSchema is returned for a schema_version outside SupportedSchema.
	ErrUnsupportedSchema = errors.New("unsupported schema_version")
)

// LoadError reports a config file that is missing, unreadable or malformed.
type LoadError struct {
	Path   string
	Issues []Issue
	Err    error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "loading project config %s", e.Path)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	for _, issue := range e.Issues {
		b.WriteString("\n  - ")
		b.WriteString(issue.String())
	}
	return b.String()
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads the configuration record at path. A .json file is decoded as
// JSON; anything else as YAML. Field order follows the document.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	parse := Parse
	if strings.EqualFold(filepath.Ext(path), ".json") {
		parse = ParseJSON
	}
	cfg, err := parse(data)
	if err != nil {
		le := &LoadError{Path: path, Err: err}
		var pe *parseError
		if errors.As(err, &pe) {
			le.Err, le.Issues = pe.err, pe.issues
		}
		return nil, le
	}
	return cfg, nil
}

type parseError struct {
	err    error
	issues []Issue
}

func (e *parseError) Error() string { return e.err.Error() }
func (e *parseError) Unwrap() error { return e.err }

// Parse decodes and validates a YAML configuration document.
func Parse(data []byte) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrNotMapping
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	inst, err := yamlInstance(data)
	if err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	cfg := New()
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := resolveAlias(root.Content[i]).Value
		cfg.Set(key, valueFromNode(root.Content[i+1]))
	}
	return finish(cfg, inst)
}

// ParseJSON decodes and validates a JSON configuration document. A repeated
// key keeps its first position and its last value.
func ParseJSON(data []byte) (*Config, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err == io.EOF {
		return nil, ErrNotMapping
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, ErrNotMapping
	}

	cfg := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("parsing config: unexpected token %v", tok)
		}
		var raw interface{}
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parsing config: field %q: %w", key, err)
		}
		cfg.Set(key, valueFromJSON(raw))
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("parsing config: unexpected data after top-level object")
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return finish(cfg, inst)
}

func finish(cfg *Config, inst interface{}) (*Config, error) {
	issues, err := validate(inst)
	if err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	if len(issues) > 0 {
		return nil, &parseError{err: ErrInvalidConfig, issues: issues}
	}
	if err := checkSchemaVersion(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func checkSchemaVersion(cfg *Config) error {
	v, ok := cfg.Get(FieldSchemaVersion)
	if !ok {
		return nil
	}
	ver, err := semver.NewVersion(strings.TrimPrefix(v.Text, "v"))
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrUnsupportedSchema, v.Text, err)
	}
	constraint, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return fmt.Errorf("parsing constraint %q: %w", SupportedSchema, err)
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("%w %q: want %s", ErrUnsupportedSchema, v.Text, SupportedSchema)
	}
	return nil
}

func valueFromNode(n *yaml.Node) Value {
	n = resolveAlias(n)
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return Value{Kind: KindOther}
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return StringValue(n.Value)
			}
			return BoolValue(b)
		default:
			return StringValue(n.Value)
		}
	case yaml.SequenceNode:
		items := make([]string, 0, len(n.Content))
		for _, c := range n.Content {
			c = resolveAlias(c)
			if c.Kind != yaml.ScalarNode || c.ShortTag() == "!!null" {
				return Value{Kind: KindOther}
			}
			items = append(items, c.Value)
		}
		return ListValue(items)
	default:
		return Value{Kind: KindOther}
	}
}

func valueFromJSON(v interface{}) Value {
	switch val := v.(type) {
	case string:
		return StringValue(val)
	case json.Number:
		return StringValue(val.String())
	case bool:
		return BoolValue(val)
	case []interface{}:
		items := make([]string, 0, len(val))
		for _, item := range val {
			switch it := item.(type) {
			case string:
				items = append(items, it)
			case json.Number:
				items = append(items, it.String())
			case bool:
				items = append(items, strconv.FormatBool(it))
			default:
				return Value{Kind: KindOther}
			}
		}
		return ListValue(items)
	default:
		return Value{Kind: KindOther}
	}
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
