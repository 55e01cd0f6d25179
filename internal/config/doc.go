// Package config defines the format-agnostic description of a match read from
// a file, along with the Loader interface implemented by concrete formats.
//
// Players in a Match are already in the same shape as players given on the
// command line: one argvec.Vector per player, named after the player kind.
// The HCL implementation lives in the hcl package.
package config
