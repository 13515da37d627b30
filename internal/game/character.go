package game

import "strings"

// Character is one player in a room instance. The ID is the
// lowercased name: names are unique within a playgroup and flags and
// achievements must survive a reconnect under the same name.
type Character struct {
	ID           string
	Name         string
	Flags        Flags
	Achievements map[string]string // name -> description
}

// NewCharacter creates a character for the given display name.
func NewCharacter(name string) *Character {
	return &Character{
		ID:           strings.ToLower(name),
		Name:         name,
		Flags:        Flags{},
		Achievements: map[string]string{},
	}
}
