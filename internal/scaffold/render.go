package scaffold

import (
	"regexp"

	"github.com/uxsprint/boilerplate/internal/project"
)

// placeholderPattern matches a {{name}} token. Names cannot contain braces,
// so "{{{x}}}" matches the inner "{{x}}".
var placeholderPattern = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// Render replaces the placeholders in content from cfg in a single pass.
// List placeholders render through their registered format; other tokens take
// the scalar value of the field they name. Tokens naming list or nested
// fields, and unknown tokens, are left as written. Replacement text is never
// scanned again.
func Render(content string, cfg *project.Config) string {
	return placeholderPattern.ReplaceAllStringFunc(content, func(token string) string {
		name := token[2 : len(token)-2]
		if out, ok := Resolve(name, cfg); ok {
			return out
		}
		return token
	})
}

// Resolve returns the replacement for a placeholder name. A list placeholder
// whose field is absent resolves to the empty string.
func Resolve(name string, cfg *project.Config) (string, bool) {
	if lp, ok := project.LookupListPlaceholder(name); ok {
		return lp.Format.Format(cfg.List(lp.Field)), true
	}
	v, ok := cfg.Get(name)
	if !ok {
		return "", false
	}
	return v.Scalar()
}
