// Package env implements the default command: build the environment
// assignments from every paths.d directory under the root.
package env
