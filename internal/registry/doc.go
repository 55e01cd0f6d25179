// Package registry maps player kinds, as written on the command line or in a
// match file, to the Factory that builds them.
//
// Player modules add themselves through the Module interface during startup.
// Registering the same kind twice is a programmer error and panics. Build
// turns one player sub-command into a ready Player and rejects specs that name
// an unknown kind or carry tokens the factory did not consume.
package registry
