// Package layout defines where the boilerplate keeps its inputs and where a
// new project is written. The base directory holds project-config.json, the
// templates/ tree and the documentation files copied into every project.
package layout
