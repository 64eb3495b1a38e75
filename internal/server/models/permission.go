package models

// Permission is the authorization flag of one user on one entry.
// A missing record is distinct from Authorized == false.
type Permission struct {
	EntryID    int64     `json:"entry_id"`
	User       Principal `json:"user"`
	Authorized bool      `json:"authorized"`
}
