package redis

import "fmt"

// Key prefix for all game-related data
const keyPrefix = "scrabble"

// dictionaryKey returns the Redis key for the dictionary word set
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}

// dictionaryStagingKey returns the key a new word list is built under
// before it replaces the live set
func dictionaryStagingKey() string {
	return fmt.Sprintf("%s:dictionary:staging", keyPrefix)
}
