// Package game runs a porrinha match.
//
// Every player starts with the same number of chopsticks. Each round every
// active player hides some of its chopsticks, then the active players guess
// the total in seat order, starting from a first seat that rotates every
// round. A guess must be a free value between zero and the number of
// chopsticks in play. The player who calls the exact total drops one
// chopstick; dropping the last one takes the player out of the game. The last
// player holding chopsticks loses.
package game
