package models

import "time"

// AccountRecord хранит снимок метаданных аккаунта в общем документе accounts.json.
// На каждый identity в документе существует не более одной записи.
type AccountRecord struct {
	Identity       string    `json:"username"`
	DisplayName    string    `json:"full_name"`
	Bio            string    `json:"bio"`
	FollowerCount  int       `json:"followers"`
	FollowingCount int       `json:"following"`
	PostCount      int       `json:"posts"`
	IsPrivate      bool      `json:"is_private"`
	LastUpdated    time.Time `json:"last_updated"` // Обновляется при каждой записи
}
