package Session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tractor/ApiClient"
	"Tractor/Models"
)

func loginServer(t *testing.T, requests *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(requests, 1)
		w.Write([]byte(`{"token":"tok-1","user":{"id":1,"username":"admin","email":"admin@tractor.local","role":"admin"}}`))
	}))
}

func TestLoginPersistsAndRestores(t *testing.T) {
	var requests int32
	ts := loginServer(t, &requests)
	defer ts.Close()

	file := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(file)
	api := ApiClient.New(ts.URL, store)

	err := store.Login(context.Background(), api, "admin@tractor.local", "admin123")
	require.NoError(t, err)
	assert.True(t, store.Authenticated())
	assert.Equal(t, "tok-1", store.Token())

	// A fresh store must come back authenticated from the file alone.
	restored := NewStore(file)
	assert.True(t, restored.Authenticated())
	user, ok := restored.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, Models.RoleAdmin, user.Role)
	assert.Equal(t, "admin@tractor.local", user.Email)
}

func TestLoginRejectsEmptyCredentialsLocally(t *testing.T) {
	var requests int32
	ts := loginServer(t, &requests)
	defer ts.Close()

	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	api := ApiClient.New(ts.URL, store)

	err := store.Login(context.Background(), api, "  ", "pw")
	require.EqualError(t, err, "Email and password are required")
	err = store.Login(context.Background(), api, "admin@tractor.local", "")
	require.EqualError(t, err, "Email and password are required")

	assert.Equal(t, int32(0), atomic.LoadInt32(&requests))
	assert.False(t, store.Authenticated())
}

func TestLoginBadCredentials(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid email or password"}`))
	}))
	defer ts.Close()

	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	api := ApiClient.New(ts.URL, store)

	err := store.Login(context.Background(), api, "admin@tractor.local", "wrong")
	require.EqualError(t, err, "Invalid email or password")
	assert.False(t, store.Authenticated())
}

func TestLoginSurfacesServerMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Account disabled"}`))
	}))
	defer ts.Close()

	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	api := ApiClient.New(ts.URL, store)

	err := store.Login(context.Background(), api, "admin@tractor.local", "admin123")
	require.EqualError(t, err, "Account disabled")
}

func TestClearRemovesFile(t *testing.T) {
	var requests int32
	ts := loginServer(t, &requests)
	defer ts.Close()

	file := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(file)
	api := ApiClient.New(ts.URL, store)

	require.NoError(t, store.Login(context.Background(), api, "admin@tractor.local", "admin123"))
	_, err := os.Stat(file)
	require.NoError(t, err)

	store.Clear()
	assert.False(t, store.Authenticated())
	_, ok := store.CurrentUser()
	assert.False(t, ok)
	_, err = os.Stat(file)
	assert.True(t, os.IsNotExist(err))
}

func TestUnreadableFileDiscarded(t *testing.T) {
	file := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(file, []byte("{not json"), 0600))

	store := NewStore(file)
	assert.False(t, store.Authenticated())
}
