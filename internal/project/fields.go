package project

import (
	"strings"
)

// Known field names.
const (
	FieldProjectName         = "project_name"
	FieldCompanyName         = "company_name"
	FieldProductName         = "product_name"
	FieldProjectGoal         = "project_goal"
	FieldCapabilities        = "capabilities"
	FieldCompetitors         = "competitors"
	FieldDeliverables        = "deliverables"
	FieldHasVisualValidation = "has_visual_validation"
	FieldSchemaVersion       = "schema_version"
)

// ListFormat selects how a list field is rendered into template text.
type ListFormat int

const (
	// FormatBoldBullets renders one "- **item**" line per item.
	FormatBoldBullets ListFormat = iota
	// FormatPlainBullets renders one "* item" line per item.
	FormatPlainBullets
	// FormatCommaSeparated renders all items on one line joined by ", ".
	FormatCommaSeparated
)

// Format renders items. Lines are joined by "\n" with no trailing newline.
func (f ListFormat) Format(items []string) string {
	switch f {
	case FormatBoldBullets:
		return joinEach(items, "- **", "**")
	case FormatPlainBullets:
		return joinEach(items, "* ", "")
	default:
		return strings.Join(items, ", ")
	}
}

func joinEach(items []string, prefix, suffix string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = prefix + item + suffix
	}
	return strings.Join(lines, "\n")
}

// ListPlaceholder binds a placeholder token to the list field it renders.
type ListPlaceholder struct {
	Token  string // name inside {{ }}, e.g. "capabilities_list"
	Field  string
	Format ListFormat
}

// ListPlaceholders is the closed set of list renderings. A list field missing
// from this table has no template form; adding one means choosing a format here.
var ListPlaceholders = []ListPlaceholder{
	{Token: "capabilities_list", Field: FieldCapabilities, Format: FormatBoldBullets},
	{Token: "competitors_list", Field: FieldCompetitors, Format: FormatCommaSeparated},
	{Token: "deliverables_list", Field: FieldDeliverables, Format: FormatPlainBullets},
}

// LookupListPlaceholder returns the list placeholder registered for token.
func LookupListPlaceholder(token string) (ListPlaceholder, bool) {
	for _, lp := range ListPlaceholders {
		if lp.Token == token {
			return lp, true
		}
	}
	return ListPlaceholder{}, false
}
