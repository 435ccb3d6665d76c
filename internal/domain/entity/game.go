// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Game is a playable title listed in the catalogue.
type Game struct {
	ID          string `json:"id" firestore:"-"`                     // Store-assigned document identifier.
	Name        string `json:"name" firestore:"name"`                // Display name, e.g. "Space Invaders".
	Description string `json:"description" firestore:"description"` // Free-form description.
	Modes       string `json:"modes" firestore:"modes"`              // Available modes, e.g. "Single Player, Multiplayer".
}

// Fields returns the document body of the game. The identifier is not part of the body.
func (g *Game) Fields() map[string]any {
	return map[string]any{
		"name":        g.Name,
		"description": g.Description,
		"modes":       g.Modes,
	}
}
