package secrets

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups this tool's secrets in the OS keychain.
const KeyringService = "linkedin-job-screener"

var ErrPasswordNotFound = errors.New("LinkedIn password not found (set LINKEDIN_PASSWORD or store it in the keychain)")

// ResolveLinkedInPassword prefers an explicit password (env/.env) and
// falls back to the keychain entry for the account email.
func ResolveLinkedInPassword(email, explicit string) (string, error) {
	if strings.TrimSpace(explicit) != "" {
		return explicit, nil
	}
	if strings.TrimSpace(email) == "" {
		return "", ErrPasswordNotFound
	}
	pw, err := keyring.Get(KeyringService, email)
	if err != nil || strings.TrimSpace(pw) == "" {
		return "", ErrPasswordNotFound
	}
	return pw, nil
}

func SetLinkedInPassword(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password is empty")
	}
	return keyring.Set(KeyringService, email, password)
}

func DeleteLinkedInPassword(email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, email)
}
