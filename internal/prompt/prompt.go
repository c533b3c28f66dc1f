package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/uxsprint/boilerplate/internal/branding"
	"github.com/uxsprint/boilerplate/internal/project"
)

type kind int

const (
	kindText kind = iota
	kindList
	kindYesNo
)

type question struct {
	field string
	label string
	kind  kind
}

// questions is the fixed prompt order.
var questions = []question{
	{project.FieldProjectName, "Project name", kindText},
	{project.FieldCompanyName, "Company name", kindText},
	{project.FieldProductName, "Product name", kindText},
	{project.FieldProjectGoal, "Project goal", kindText},
	{project.FieldCapabilities, "Key capabilities (comma-separated)", kindList},
	{project.FieldCompetitors, "Main competitors (comma-separated)", kindList},
	{project.FieldHasVisualValidation, "Include visual validation? (y/n)", kindYesNo},
}

// Collect prompts for each configurable field on w and reads one answer per
// line from r, updating cfg in place. Once r is exhausted every remaining
// field keeps its current value.
func Collect(cfg *project.Config, r io.Reader, w io.Writer) error {
	reader := bufio.NewReader(r)
	printHeader(w)

	eof := false
	for _, q := range questions {
		fmt.Fprintf(w, "%s [%s]: ", q.label, currentDefault(cfg, q))

		answer := ""
		if !eof {
			line, err := reader.ReadString('\n')
			switch {
			case errors.Is(err, io.EOF):
				eof = true
				fmt.Fprintln(w)
			case err != nil:
				return fmt.Errorf("reading %s: %w", q.field, err)
			}
			answer = strings.TrimRight(line, "\r\n")
		} else {
			fmt.Fprintln(w)
		}

		apply(cfg, q, answer)
	}
	return nil
}

// AcceptDefaults prints the header and every field's current value without
// reading input.
func AcceptDefaults(cfg *project.Config, w io.Writer) {
	printHeader(w)
	for _, q := range questions {
		fmt.Fprintf(w, "%s: %s\n", q.label, currentDefault(cfg, q))
	}
}

func printHeader(w io.Writer) {
	fmt.Fprintln(w, branding.DisplayName()+" Setup")
	fmt.Fprintln(w, strings.Repeat("=", 40))
}

func currentDefault(cfg *project.Config, q question) string {
	switch q.kind {
	case kindList:
		return strings.Join(cfg.List(q.field), ", ")
	case kindYesNo:
		if cfg.Bool(q.field) {
			return "y"
		}
		return "n"
	default:
		return cfg.Text(q.field)
	}
}

// apply stores a non-empty answer. Answers are taken as typed.
func apply(cfg *project.Config, q question, answer string) {
	if answer == "" {
		return
	}
	switch q.kind {
	case kindList:
		cfg.Set(q.field, project.ListValue(SplitList(answer)))
	case kindYesNo:
		cfg.Set(q.field, project.BoolValue(strings.EqualFold(answer, "y")))
	default:
		cfg.Set(q.field, project.StringValue(answer))
	}
}

// SplitList splits a comma-separated answer and trims each element.
// Empty elements are kept.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
