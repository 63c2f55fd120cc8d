// Package cli parses the gridpath command line, validates user input and
// carries process exit codes. It translates flags into Options for the
// scenario runner.
package cli
