package entity

// Identity is the authenticated caller attached to a request.
type Identity struct {
	Subject string `json:"subject"` // Token subject (user id at the identity provider).
	Role    Role   `json:"role"`
}
