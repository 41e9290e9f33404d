package auth

import (
	"crypto/subtle"

	"gameshelf/internal/config"
)

// CheckAdminSecret reports whether the submitted password matches the
// configured admin secret. This is a single shared passphrase, not a
// per-user credential; edit and delete submissions are gated on it.
func CheckAdminSecret(password string) bool {
	secret := config.AppConfig.SecretKey
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(secret)) == 1
}
