package project

// Kind classifies a configuration value.
type Kind int

const (
	// KindString is scalar text. Numbers are kept in their source form.
	KindString Kind = iota
	// KindBool is a true/false flag.
	KindBool
	// KindList is an ordered list of strings.
	KindList
	// KindOther covers nulls, nested mappings and lists holding non-scalars.
	// Such values pass through loading untouched and are never rendered.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	default:
		return "other"
	}
}

// Value is a single configuration value. Only the field matching Kind is set.
type Value struct {
	Kind  Kind
	Text  string
	Bool  bool
	Items []string
}

// StringValue returns a KindString value.
func StringValue(s string) Value { return Value{Kind: KindString, Text: s} }

// BoolValue returns a KindBool value.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// ListValue returns a KindList value holding a copy of items.
func ListValue(items []string) Value {
	return Value{Kind: KindList, Items: append([]string(nil), items...)}
}

// Scalar returns the text substituted for a {{field}} token. Bools render as
// "True" or "False". The second result is false for lists and other
// non-scalar kinds.
func (v Value) Scalar() (string, bool) {
	switch v.Kind {
	case KindString:
		return v.Text, true
	case KindBool:
		if v.Bool {
			return "True", true
		}
		return "False", true
	default:
		return "", false
	}
}

// Config is the ordered configuration record. Keys keep the order in which
// they were first set; setting an existing key replaces its value in place.
type Config struct {
	keys   []string
	values map[string]Value
}

// New returns an empty Config.
func New() *Config {
	return &Config{values: make(map[string]Value)}
}

// Keys returns the field names in order.
func (c *Config) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Len returns the number of fields.
func (c *Config) Len() int { return len(c.keys) }

// Get returns the value stored under key.
func (c *Config) Get(key string) (Value, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Set stores v under key.
func (c *Config) Set(key string, v Value) {
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = v
}

// Text returns the scalar form of key, or "" when key is missing or not a scalar.
func (c *Config) Text(key string) string {
	v, ok := c.values[key]
	if !ok {
		return ""
	}
	s, _ := v.Scalar()
	return s
}

// List returns the items of a list field, or nil.
func (c *Config) List(key string) []string {
	v, ok := c.values[key]
	if !ok || v.Kind != KindList {
		return nil
	}
	return append([]string(nil), v.Items...)
}

// Bool returns the value of a bool field, or false.
func (c *Config) Bool(key string) bool {
	v, ok := c.values[key]
	return ok && v.Kind == KindBool && v.Bool
}
