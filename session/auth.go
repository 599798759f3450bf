package session

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/themenu/models"
)

// ErrEmptyToken rejects auth responses whose token is empty after trimming.
var ErrEmptyToken = errors.New("refusing to store empty session token")

// CacheClearer is the one thing logout needs from the query layer.
type CacheClearer interface {
	Clear()
}

// StoreAuthData persists a successful login/register response: token first,
// then profile fields. The token is validated before anything is written so
// a bad response leaves no partial session behind.
func StoreAuthData(store *Store, auth *models.AuthResponse, accountType models.AccountType) error {
	token := strings.TrimSpace(auth.Token)
	if token == "" {
		return ErrEmptyToken
	}

	// Advisory only: the backend may legitimately issue opaque tokens, but a
	// non-JWT here usually means a misconfigured environment.
	if _, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{}); err != nil {
		logrus.WithError(err).Warn("stored token does not look like a JWT")
	}

	if err := store.Set(KeyToken, token); err != nil {
		return err
	}
	if err := store.Set(KeyUsername, auth.User.FirstName+" "+auth.User.LastName); err != nil {
		return err
	}
	if err := store.Set(KeyUserID, auth.User.ID); err != nil {
		return err
	}
	if accountType != "" {
		if err := store.Set(KeyAccountType, string(accountType)); err != nil {
			return err
		}
	}
	return nil
}

// Logout clears every session key and empties the query cache, so the next
// read of any entity goes back to the network.
func Logout(store *Store, cache CacheClearer) error {
	err := store.Clear()
	if cache != nil {
		cache.Clear()
	}
	return err
}

// AccountType returns the stored account type, defaulting to customer.
func AccountType(store *Store) models.AccountType {
	if at := models.AccountType(store.Get(KeyAccountType)); at.IsValid() {
		return at
	}
	return models.AccountTypeCustomer
}
