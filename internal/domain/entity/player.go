package entity

// Player is a registered participant.
type Player struct {
	ID               string `json:"id" firestore:"-"`
	Username         string `json:"username" firestore:"username"`
	Achievements     string `json:"achievements" firestore:"achievements"`         // Comma separated, empty when none.
	TotalGamesPlayed int    `json:"totalGamesPlayed" firestore:"totalGamesPlayed"` // Never negative.
}

// Fields returns the document body of the player.
func (p *Player) Fields() map[string]any {
	return map[string]any{
		"username":         p.Username,
		"achievements":     p.Achievements,
		"totalGamesPlayed": p.TotalGamesPlayed,
	}
}
