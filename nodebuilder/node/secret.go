package node

import (
	"errors"

	"github.com/cristalhq/jwt/v5"

	"github.com/0glabs/0g-da-light/libs/authtoken"
	"github.com/0glabs/0g-da-light/libs/keystore"
)

// SecretName is the name of the JWT secret in the node's Keystore.
const SecretName = keystore.KeyName("jwt-secret.jwt")

// Secret returns the node's JWT secret if it exists, or generates and saves a
// new one if it does not.
func Secret(ks keystore.Keystore) ([]byte, error) {
	key, err := ks.Get(SecretName)
	switch {
	case err == nil:
		return key.Body, nil
	case !errors.Is(err, keystore.ErrNotFound):
		return nil, err
	}

	log.Infow("generating JWT secret")
	body, err := authtoken.NewSecret()
	if err != nil {
		return nil, err
	}
	if err := ks.Put(SecretName, keystore.PrivKey{Body: body}); err != nil {
		return nil, err
	}
	return body, nil
}

func signer(ks keystore.Keystore) (*jwt.HSAlg, error) {
	sk, err := Secret(ks)
	if err != nil {
		return nil, err
	}
	return authtoken.NewHS256(sk)
}
