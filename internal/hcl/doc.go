// Package hcl provides the HCL implementation of config.Loader.
//
// A match file sets optional top-level attributes and lists players as
// labelled blocks:
//
//	chopsticks = 3
//	rounds     = 50
//
//	player "fixed" {
//	  args = [1, 2]
//	}
//
// The elements of args may be strings, numbers or bools; each is converted to
// its string form and becomes one token of the player's argument vector.
package hcl
