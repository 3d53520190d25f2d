// Package commands provides the high-level operations behind the CLI.
//
// Each command is implemented in its own subdirectory:
//   - scan/  - discover-then-collect shared by the others
//   - env/   - Env, the default command
//   - list/  - List, every directory with its files and values
//   - dirs/  - ListDirs and CreateDir
//   - files/ - ListFiles and CreateFile
//
// This file re-exports the command functions so callers need one import.
package commands

import (
	"github.com/arthur-debert/pathmaster/pkg/commands/dirs"
	"github.com/arthur-debert/pathmaster/pkg/commands/env"
	"github.com/arthur-debert/pathmaster/pkg/commands/files"
	"github.com/arthur-debert/pathmaster/pkg/commands/list"
	"github.com/arthur-debert/pathmaster/pkg/commands/scan"
)

// ScanOptions selects root, pattern, environment and filesystem.
type ScanOptions = scan.Options

// Env builds one variable per directory that yields values.
type EnvOptions = env.EnvOptions

func Env(opts EnvOptions) (*env.EnvResult, error) {
	return env.Env(opts)
}

// List reports every matched directory, empty ones included.
type ListOptions = list.ListOptions

func List(opts ListOptions) (*list.ListResult, error) {
	return list.List(opts)
}

// ListDirs returns matched directories without reading them.
func ListDirs(opts ScanOptions) ([]dirs.DirInfo, error) {
	return dirs.ListDirs(opts)
}

// CreateDir creates <root>/<KEY>paths.d directories.
type CreateDirOptions = dirs.CreateDirOptions

func CreateDir(opts CreateDirOptions) ([]dirs.DirInfo, error) {
	return dirs.CreateDir(opts)
}

// ListFiles returns the fragment files per directory in read order.
func ListFiles(opts ScanOptions) ([]files.DirFiles, error) {
	return files.ListFiles(opts)
}

// CreateFile writes a fragment file.
type CreateFileOptions = files.CreateFileOptions

func CreateFile(opts CreateFileOptions) (*files.FileResult, error) {
	return files.CreateFile(opts)
}
