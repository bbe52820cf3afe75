// Package executor applies a rename plan to the filesystem.
//
// Each rename is applied independently and in order, either as a direct
// filesystem rename or through a user supplied rename command such as
// "git mv". The first failure stops the batch; renames already applied stay
// applied. The only retry is for a direct rename whose destination parent
// directory is missing: the directories are created and the rename is
// attempted once more.
package executor
