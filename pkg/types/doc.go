// Package types defines the data model shared by renamer's components:
// the Rename pair, the ordered Plan built from edited lines, and the
// Selection values that drive the interactive execution loop.
package types
