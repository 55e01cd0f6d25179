// Package cli is responsible for reading the command line, validating user
// input, and handling process-level concerns like exit codes. It walks the
// process arguments as an argvec.Vector: options first, then one bracketed
// sub-command per player.
package cli
