package authtoken

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"time"

	"github.com/cristalhq/jwt/v5"
	"github.com/filecoin-project/go-jsonrpc/auth"

	"github.com/0glabs/0g-da-light/api/rpc/perms"
)

// ErrTokenExpired is returned for tokens used past their expiration time.
var ErrTokenExpired = errors.New("authtoken: token expired")

// ExtractSignedPermissions returns the permissions granted to the token by the passed signer.
// If the token isn't signed by the signer, it will not pass verification.
func ExtractSignedPermissions(verifier jwt.Verifier, token string) ([]auth.Permission, error) {
	tk, err := jwt.Parse([]byte(token), verifier)
	if err != nil {
		return nil, err
	}
	p := new(perms.JWTPayload)
	err = json.Unmarshal(tk.Claims(), p)
	if err != nil {
		return nil, err
	}
	if p.Expired(time.Now()) {
		return nil, ErrTokenExpired
	}
	return p.Allow, nil
}

// NewSignedJWT returns a signed JWT token with the passed permissions and signer.
func NewSignedJWT(signer jwt.Signer, permissions []auth.Permission) (string, error) {
	token, err := jwt.NewBuilder(signer).Build(&perms.JWTPayload{
		Allow: permissions,
	})
	if err != nil {
		return "", err
	}
	return token.String(), nil
}

// NewSecret generates a random HS256 secret for signing tokens.
func NewSecret() ([]byte, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, err
	}
	return secret, nil
}

// NewHS256 builds a signer and verifier out of the secret.
func NewHS256(secret []byte) (*jwt.HSAlg, error) {
	return jwt.NewSignerHS(jwt.HS256, secret)
}
