// Package argvec provides Vector, a cursor-addressed view over command-line
// tokens.
//
// A Vector is built from the raw process arguments (the first element
// becomes the program name) or assembled token by token with PushBack. Callers
// read it with Peek, Shift and Next, detach contiguous or predicate-bounded
// slices with SubArg, SubCmd, SubArgUntil and SubCmdUntil, and convert tokens
// into typed values with Parse or Vector.Scan.
//
// Every operation that can fail leaves the Vector exactly as it was before
// the call. The only failure is running out of tokens, reported as an error
// matching ErrOutOfRange. Conversion problems are not errors: they are written
// as Error or Warning lines to the Vector's log sink and the token is still
// consumed.
package argvec
