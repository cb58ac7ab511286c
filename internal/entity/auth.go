package entity

import "time"

type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthSession is an issued access token and the user it belongs to.
type AuthSession struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        AuthUser  `json:"user"`
}
