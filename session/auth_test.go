package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/themenu/models"
)

type fakeCache struct {
	cleared bool
}

func (f *fakeCache) Clear() { f.cleared = true }

func authResponse(token string) *models.AuthResponse {
	return &models.AuthResponse{
		User:  models.User{ID: "u1", FirstName: "Ada", LastName: "Lovelace"},
		Token: token,
	}
}

func TestStoreAuthData(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, StoreAuthData(store, authResponse(" abc.def.ghi "), models.AccountTypeRestaurant))

	assert.Equal(t, "abc.def.ghi", store.Get(KeyToken))
	assert.Equal(t, "Ada Lovelace", store.Get(KeyUsername))
	assert.Equal(t, "u1", store.Get(KeyUserID))
	assert.Equal(t, "restaurant", store.Get(KeyAccountType))
}

func TestStoreAuthDataEmptyToken(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	err = StoreAuthData(store, authResponse("   "), models.AccountTypeCustomer)
	require.ErrorIs(t, err, ErrEmptyToken)

	// no partial writes
	assert.Equal(t, "", store.Get(KeyToken))
	assert.Equal(t, "", store.Get(KeyUsername))
	assert.Equal(t, "", store.Get(KeyUserID))
}

func TestStoreAuthDataOmitsAccountTypeWhenUnset(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, StoreAuthData(store, authResponse("abc.def.ghi"), ""))
	assert.Equal(t, "", store.Get(KeyAccountType))
	assert.Equal(t, models.AccountTypeCustomer, AccountType(store))
}

func TestLogout(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, StoreAuthData(store, authResponse("abc.def.ghi"), models.AccountTypeCustomer))
	require.NoError(t, store.Set(KeyAvatar, "https://cdn.example.com/me.png"))

	cache := &fakeCache{}
	require.NoError(t, Logout(store, cache))

	assert.True(t, cache.cleared)
	for _, key := range sessionKeys {
		assert.Equal(t, "", store.Get(key))
	}
	assert.False(t, store.LoggedIn())
}

func TestAccountTypeDefaultsToCustomer(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, models.AccountTypeCustomer, AccountType(store))

	require.NoError(t, store.Set(KeyAccountType, "restaurant"))
	assert.Equal(t, models.AccountTypeRestaurant, AccountType(store))

	require.NoError(t, store.Set(KeyAccountType, "bogus"))
	assert.Equal(t, models.AccountTypeCustomer, AccountType(store))
}
