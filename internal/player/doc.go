// Package player defines the contract between the game core and the AI
// players: the Player interface, the Factory that builds a Player from its
// argument vector, and the Guess value exchanged every round.
package player
