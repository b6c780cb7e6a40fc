package models

// User is a GitLab user. Users are never mutated by this tool, only
// referenced when granting or revoking project membership.
type User struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	State    string `json:"state"`
	Email    string `json:"email,omitempty"`
}
