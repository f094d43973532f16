package bh2e

import "time"

// RollRecord is a dice roll attached to a chat message
type RollRecord struct {
	Formula string `json:"formula"`
	Total   int    `json:"total"`
	Results []int  `json:"results"`
}

// ChatMessage is one entry of the shared chat log
type ChatMessage struct {
	ID        string      `json:"id"`
	Speaker   string      `json:"speaker"`
	Content   string      `json:"content"`
	Roll      *RollRecord `json:"roll,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
