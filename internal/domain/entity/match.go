package entity

import "time"

// Match records a single score a player achieved in a game.
// GameID and PlayerID are plain references; their existence is not checked.
type Match struct {
	ID        string    `json:"id" firestore:"-"`
	GameID    string    `json:"gameId" firestore:"gameId"`
	PlayerID  string    `json:"playerId" firestore:"playerId"`
	Score     int       `json:"score" firestore:"score"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

// Fields returns the document body of the match.
func (m *Match) Fields() map[string]any {
	return map[string]any{
		"gameId":    m.GameID,
		"playerId":  m.PlayerID,
		"score":     m.Score,
		"timestamp": m.Timestamp,
	}
}
