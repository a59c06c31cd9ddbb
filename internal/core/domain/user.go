package domain

// User is the authenticated-user identity returned by /api/login and kept in
// the local session record. No token or expiry is tracked.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}
