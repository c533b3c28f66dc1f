// Package platform papers over permission handling differences between Unix
// and Windows for files written into a new project.
package platform
