package prompt

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/uxsprint/boilerplate/internal/project"
)

func newTestConfig() *project.Config {
	cfg := project.New()
	cfg.Set(project.FieldProjectName, project.StringValue("Checkout Redesign"))
	cfg.Set(project.FieldCompanyName, project.StringValue("Acme Corp"))
	cfg.Set(project.FieldProductName, project.StringValue("Acme Pay"))
	cfg.Set(project.FieldProjectGoal, project.StringValue("Reduce abandonment"))
	cfg.Set(project.FieldCapabilities, project.ListValue([]string{"Fast", "Simple"}))
	cfg.Set(project.FieldCompetitors, project.ListValue([]string{"Stripe", "Adyen"}))
	cfg.Set(project.FieldDeliverables, project.ListValue([]string{"Prototype"}))
	cfg.Set(project.FieldHasVisualValidation, project.BoolValue(true))
	return cfg
}

func TestCollect_EmptyAnswersKeepDefaults(t *testing.T) {
	cfg := newTestConfig()
	var out bytes.Buffer

	if err := Collect(cfg, strings.NewReader("\n\n\n\n\n\n\n"), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := newTestConfig()
	for _, key := range want.Keys() {
		got, _ := cfg.Get(key)
		exp, _ := want.Get(key)
		if !reflect.DeepEqual(got, exp) {
			t.Errorf("%s = %+v, want %+v", key, got, exp)
		}
	}
}

func TestCollect_AnswersOverwrite(t *testing.T) {
	cfg := newTestConfig()
	input := strings.Join([]string{
		"Onboarding",
		"Initech",
		"",
		"Shorten time to first value",
		" Guided ,  Smart,Quick ",
		"",
		"N",
	}, "\n") + "\n"

	if err := Collect(cfg, strings.NewReader(input), &bytes.Buffer{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := cfg.Text(project.FieldProjectName); got != "Onboarding" {
		t.Errorf("project_name = %q", got)
	}
	if got := cfg.Text(project.FieldCompanyName); got != "Initech" {
		t.Errorf("company_name = %q", got)
	}
	if got := cfg.Text(project.FieldProductName); got != "Acme Pay" {
		t.Errorf("product_name = %q, want default kept", got)
	}
	if got := cfg.List(project.FieldCapabilities); !reflect.DeepEqual(got, []string{"Guided", "Smart", "Quick"}) {
		t.Errorf("capabilities = %q", got)
	}
	if got := cfg.List(project.FieldCompetitors); !reflect.DeepEqual(got, []string{"Stripe", "Adyen"}) {
		t.Errorf("competitors = %q, want default kept", got)
	}
	if cfg.Bool(project.FieldHasVisualValidation) {
		t.Error("has_visual_validation should be false after answering N")
	}
}

func TestCollect_YesNo(t *testing.T) {
	tests := []struct {
		answer  string
		initial bool
		want    bool
	}{
		{"y", false, true},
		{"Y", false, true},
		{"yes", true, false},
		{"n", true, false},
		{"", true, true},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			cfg := newTestConfig()
			cfg.Set(project.FieldHasVisualValidation, project.BoolValue(tt.initial))
			input := strings.Repeat("\n", 6) + tt.answer + "\n"

			if err := Collect(cfg, strings.NewReader(input), &bytes.Buffer{}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := cfg.Bool(project.FieldHasVisualValidation); got != tt.want {
				t.Errorf("answer %q from %v: got %v, want %v", tt.answer, tt.initial, got, tt.want)
			}
		})
	}
}

func TestCollect_PromptText(t *testing.T) {
	cfg := newTestConfig()
	var out bytes.Buffer

	if err := Collect(cfg, strings.NewReader(strings.Repeat("\n", 7)), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	for _, want := range []string{
		"UX Sprint Boilerplate Setup\n" + strings.Repeat("=", 40) + "\n",
		"Project name [Checkout Redesign]: ",
		"Key capabilities (comma-separated) [Fast, Simple]: ",
		"Main competitors (comma-separated) [Stripe, Adyen]: ",
		"Include visual validation? (y/n) [y]: ",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\n--- output ---\n%s", want, output)
		}
	}
	if strings.Contains(output, "Prototype") {
		t.Error("deliverables should not be prompted")
	}
}

func TestCollect_EOFKeepsRemaining(t *testing.T) {
	cfg := newTestConfig()

	// Only the first answer is present and it has no trailing newline.
	if err := Collect(cfg, strings.NewReader("Partial"), &bytes.Buffer{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.Text(project.FieldProjectName); got != "Partial" {
		t.Errorf("project_name = %q, want %q", got, "Partial")
	}
	if got := cfg.Text(project.FieldCompanyName); got != "Acme Corp" {
		t.Errorf("company_name = %q, want default kept", got)
	}
}

func TestCollect_CRLF(t *testing.T) {
	cfg := newTestConfig()
	if err := Collect(cfg, strings.NewReader("Windows\r\n"), &bytes.Buffer{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.Text(project.FieldProjectName); got != "Windows" {
		t.Errorf("project_name = %q, want %q", got, "Windows")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty closed") }

func TestCollect_ReadError(t *testing.T) {
	err := Collect(newTestConfig(), failingReader{}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error from failing reader")
	}
	if !strings.Contains(err.Error(), "project_name") {
		t.Errorf("error should name the field being read, got: %v", err)
	}
}

func TestAcceptDefaults(t *testing.T) {
	cfg := newTestConfig()
	var out bytes.Buffer
	AcceptDefaults(cfg, &out)

	if !strings.Contains(out.String(), "Company name: Acme Corp\n") {
		t.Errorf("output missing company default:\n%s", out.String())
	}
	if got := cfg.Text(project.FieldProjectName); got != "Checkout Redesign" {
		t.Errorf("AcceptDefaults changed project_name to %q", got)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a,b", []string{"a", "b"}},
		{" a , b ", []string{"a", "b"}},
		{"a,,b", []string{"a", "", "b"}},
		{"solo", []string{"solo"}},
	}

	for _, tt := range tests {
		if got := SplitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitList(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
