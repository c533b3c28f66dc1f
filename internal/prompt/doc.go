// Package prompt walks the user through the configurable fields of a project
// config on a line-oriented reader and writer. Each prompt shows the current
// value as its default; an empty answer keeps it.
package prompt
