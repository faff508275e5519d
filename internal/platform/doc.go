// Package platform provides cross-platform filesystem helpers used when the
// CLI writes manifest files: atomic replacement of an output file and
// permission management that is a no-op on Windows.
package platform
