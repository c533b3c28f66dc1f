// Package scaffold materializes a new project from a template tree. Files
// named with the .template marker have their {{field}} placeholders rendered
// from the project config and lose the marker; every other file is copied
// byte for byte. The boilerplate's documentation files are copied last.
package scaffold
