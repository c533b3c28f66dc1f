// Package config manages user-level settings stored at ~/.uxsprint/config.yaml.
// Settings supply defaults for the boilerplate base directory, the output
// root for new projects and the log level. Every key can also be set through
// a UXSPRINT_<KEY> environment variable.
package config
