// Package testutil provides utilities for testing renamer components.
//
// Key components:
//   - TestEnvironment: isolated working directory with HOME, XDG and undo
//     file locations pointing inside it
//   - EnvMemoryOnly uses an afero MemMapFs, EnvIsolated a real directory
//     under t.TempDir(). Renames that create missing parents need
//     EnvIsolated because MemMapFs.Rename does not fail on them.
//   - Scripted editor and prompter doubles for driving sessions
package testutil
