package perms

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cristalhq/jwt/v5"
	"github.com/filecoin-project/go-jsonrpc/auth"
)

var (
	DefaultPerms   = []auth.Permission{"public"}
	ReadPerms      = []auth.Permission{"public", "read"}
	ReadWritePerms = []auth.Permission{"public", "read", "write"}
	AllPerms       = []auth.Permission{"public", "read", "write", "admin"}
)

var AuthKey = "Authorization"

// JWTPayload is a utility struct for marshaling/unmarshalling
// permissions into for token signing/verifying.
type JWTPayload struct {
	Allow     []auth.Permission
	Nonce     []byte
	ExpiresAt time.Time
}

func (j *JWTPayload) MarshalBinary() (data []byte, err error) {
	return json.Marshal(j)
}

// Expired reports whether the token carrying the payload is no longer valid
// at now. A zero ExpiresAt never expires.
func (j *JWTPayload) Expired(now time.Time) bool {
	return !j.ExpiresAt.IsZero() && now.After(j.ExpiresAt)
}

// With returns the permission set granted by the given highest permission.
func With(perm string) ([]auth.Permission, error) {
	switch perm {
	case "public":
		return DefaultPerms, nil
	case "read":
		return ReadPerms, nil
	case "write":
		return ReadWritePerms, nil
	case "admin":
		return AllPerms, nil
	default:
		return nil, fmt.Errorf("perms: unknown permission %q, expected one of public, read, write, admin", perm)
	}
}

// NewTokenWithPerms generates and signs a new JWT token with the given secret
// and given permissions. A zero ttl issues a token that never expires.
func NewTokenWithPerms(signer jwt.Signer, perms []auth.Permission, ttl time.Duration) ([]byte, error) {
	var nonce [32]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, err
	}

	p := &JWTPayload{
		Allow: perms,
		Nonce: nonce[:],
	}
	if ttl > 0 {
		p.ExpiresAt = time.Now().UTC().Add(ttl)
	}
	token, err := jwt.NewBuilder(signer).Build(p)
	if err != nil {
		return nil, err
	}
	return token.Bytes(), nil
}
