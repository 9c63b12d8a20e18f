// Package auth applies Atlas API credentials to outgoing requests.
package auth

import (
	"errors"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrMissingKeyPair = errors.New("both public and private key are required")
)

// Authenticator applies credentials to an outgoing request. The transport
// calls it once per attempt; resource clients never construct auth headers.
type Authenticator interface {
	Apply(req *http.Request) error
}

// APIKeyAuth authenticates with an Atlas programmatic API key pair.
type APIKeyAuth struct {
	PublicKey  string
	PrivateKey string
}

// NewAPIKeyAuth creates an authenticator for the given key pair.
func NewAPIKeyAuth(publicKey, privateKey string) *APIKeyAuth {
	return &APIKeyAuth{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	}
}

// Apply implements Authenticator.
func (a *APIKeyAuth) Apply(req *http.Request) error {
	if a.PublicKey == "" || a.PrivateKey == "" {
		return ErrMissingKeyPair
	}

	req.SetBasicAuth(a.PublicKey, a.PrivateKey)

	return nil
}
