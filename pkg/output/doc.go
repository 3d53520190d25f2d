// Package output turns collected paths.d records into text a shell or a
// program can consume.
//
// Shell formats print one assignment per variable:
//
//	env   PATH="/usr/bin:/opt/bin"
//	sh    PATH='/usr/bin:/opt/bin'; export PATH;
//	csh   setenv PATH '/usr/bin:/opt/bin';
//	fish  set -gx PATH '/usr/bin' '/opt/bin';
//
// Structured formats (json, yaml, toml) emit a single document with a
// "variables" list. A key produced by more than one directory appears once
// per directory, in discovery order.
package output
