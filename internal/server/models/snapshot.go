package models

import "time"

// Snapshot is a consistent copy of the whole registry.
type Snapshot struct {
	TakenAt     time.Time    `json:"taken_at"`
	TotalCount  int64        `json:"total_count"`
	Entries     []Entry      `json:"entries"`
	Permissions []Permission `json:"permissions"`
}
