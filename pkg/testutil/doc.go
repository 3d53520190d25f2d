// Package testutil provides utilities for testing pathmaster components.
//
// Key components:
//   - Tree: declarative description of a root directory and its fragments
//   - WriteTree: materialize a Tree in a real temp directory
//   - MemoryTree: materialize a Tree in an afero in-memory filesystem
//   - FaultyFS: wrap any types.FS and inject errors per path
//   - IsolateEnv: point HOME and XDG dirs at a temp dir for config tests
//
// Usage guidelines:
//   - Core logic tests (pkg/pathsd) should prefer MemoryTree for speed
//   - Behavior that depends on the OS (symlinks, permissions) uses WriteTree
//   - All test data should be defined inline, not in external files
package testutil
