package model

import "github.com/m-mizutani/goerr/v2"

// Credentials is the client id/secret pair exchanged for a bearer token
type Credentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret" masq:"secret"`
}

// Validate checks that both halves of the pair are present
func (c Credentials) Validate() error {
	if c.ClientID == "" {
		return goerr.New("client id is required")
	}
	if c.ClientSecret == "" {
		return goerr.New("client secret is required")
	}
	return nil
}

// Token is an opaque bearer credential. It is requested fresh for every
// operation and never persisted.
type Token string

// Bearer returns the Authorization header value for the token
func (t Token) Bearer() string {
	return "Bearer " + string(t)
}
