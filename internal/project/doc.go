// Package project holds the UX sprint configuration record: the ordered set of
// fields loaded from project-config.json, the closed set of value kinds a field
// can have, and the list placeholders that render list fields as markup.
// It also derives the filesystem slug used to name a new project directory.
package project
