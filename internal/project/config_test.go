package project

import (
	"reflect"
	"testing"
)

func TestConfigSetKeepsOrder(t *testing.T) {
	c := New()
	c.Set("b", StringValue("1"))
	c.Set("a", StringValue("2"))
	c.Set("b", StringValue("3"))

	if got, want := c.Keys(), []string{"b", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if got := c.Text("b"); got != "3" {
		t.Errorf("Text(b) = %q, want %q", got, "3")
	}
}

func TestValueScalar(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		want   string
		wantOK bool
	}{
		{"string", StringValue("Foo"), "Foo", true},
		{"true", BoolValue(true), "True", true},
		{"false", BoolValue(false), "False", true},
		{"list", ListValue([]string{"a"}), "", false},
		{"other", Value{Kind: KindOther}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.Scalar()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Scalar() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestListValueCopies(t *testing.T) {
	items := []string{"a", "b"}
	v := ListValue(items)
	items[0] = "changed"
	if v.Items[0] != "a" {
		t.Errorf("ListValue shares backing array with caller")
	}
}

func TestAccessorsOnWrongKind(t *testing.T) {
	c := New()
	c.Set("flag", StringValue("yes"))
	c.Set("items", StringValue("a,b"))

	if c.Bool("flag") {
		t.Error("Bool() on a string field should be false")
	}
	if c.List("items") != nil {
		t.Error("List() on a string field should be nil")
	}
	if c.Text("missing") != "" {
		t.Error("Text() on a missing field should be empty")
	}
}

func TestListFormat(t *testing.T) {
	tests := []struct {
		format ListFormat
		items  []string
		want   string
	}{
		{FormatBoldBullets, []string{"Fast", "Simple"}, "- **Fast**\n- **Simple**"},
		{FormatPlainBullets, []string{"Map", "Deck"}, "* Map\n* Deck"},
		{FormatCommaSeparated, []string{"A", "B", "C"}, "A, B, C"},
		{FormatBoldBullets, nil, ""},
		{FormatCommaSeparated, []string{"solo"}, "solo"},
	}

	for _, tt := range tests {
		if got := tt.format.Format(tt.items); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.items, got, tt.want)
		}
	}
}

func TestLookupListPlaceholder(t *testing.T) {
	lp, ok := LookupListPlaceholder("competitors_list")
	if !ok {
		t.Fatal("competitors_list not registered")
	}
	if lp.Field != FieldCompetitors || lp.Format != FormatCommaSeparated {
		t.Errorf("competitors_list = %+v", lp)
	}
	if _, ok := LookupListPlaceholder("capabilities"); ok {
		t.Error("bare field name should not be a list placeholder")
	}
}
