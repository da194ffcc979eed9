package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spontrip/internal/models/db_models"
	"spontrip/internal/models/request_models"
	"spontrip/internal/repositories"
	"spontrip/internal/store"
	"spontrip/pkg/kvstore"
)

func newSessionFixture(t *testing.T) (SessionServiceInterface, repositories.UserRepository, kvstore.Store) {
	t.Helper()
	s := store.New()
	store.Seed(s)
	userRepo := repositories.NewMemoryUserRepository(s)
	kv := kvstore.NewMemoryStore()
	return NewSessionService(userRepo, kv), userRepo, kv
}

func TestSessionService_LoginDemoAccount(t *testing.T) {
	svc, _, kv := newSessionFixture(t)
	ctx := context.Background()

	user, ok := svc.Login(ctx, "demo@example.com", "password")
	require.True(t, ok)
	require.NotNil(t, user)
	assert.Equal(t, "Demo User", user.Name)

	current, authenticated := svc.Current()
	require.True(t, authenticated)
	assert.Equal(t, user.ID, current.ID)

	raw, exists, err := kv.Get(ctx, SessionKey)
	require.NoError(t, err)
	require.True(t, exists)
	var persisted db_models.User
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, "demo@example.com", persisted.Email)
}

func TestSessionService_LoginRejectsBadCredentials(t *testing.T) {
	svc, _, kv := newSessionFixture(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "demo@example.com", "letmein"},
		{"unknown email", "ghost@example.com", "password"},
		{"user without password", "jane@example.com", "password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user, ok := svc.Login(ctx, tc.email, tc.password)
			assert.False(t, ok)
			assert.Nil(t, user)

			_, authenticated := svc.Current()
			assert.False(t, authenticated)

			_, exists, err := kv.Get(ctx, SessionKey)
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestSessionService_Logout(t *testing.T) {
	svc, _, kv := newSessionFixture(t)
	ctx := context.Background()

	_, ok := svc.Login(ctx, "demo@example.com", "password")
	require.True(t, ok)

	svc.Logout(ctx)

	_, authenticated := svc.Current()
	assert.False(t, authenticated)

	_, exists, err := kv.Get(ctx, SessionKey)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSessionService_SignupIssuesDistinctIDs(t *testing.T) {
	svc, userRepo, _ := newSessionFixture(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		user, ok := svc.Signup(ctx, request_models.SignUpRequest{
			Name:     "Traveler",
			Email:    email,
			Password: "secret-pass",
			Age:      25,
			Location: "Lisbon",
		})
		require.True(t, ok)
		require.NotEmpty(t, user.ID)
		assert.False(t, seen[user.ID], "id %s issued twice", user.ID)
		seen[user.ID] = true

		stored, err := userRepo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, email, stored.Email)
		assert.NotEqual(t, "secret-pass", stored.PasswordHash)
	}
}

func TestSessionService_SignupStartsSession(t *testing.T) {
	svc, _, kv := newSessionFixture(t)
	ctx := context.Background()

	user, ok := svc.Signup(ctx, request_models.SignUpRequest{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "secret-pass",
		Age:      30,
		Location: "Berlin",
	})
	require.True(t, ok)

	current, authenticated := svc.Current()
	require.True(t, authenticated)
	assert.Equal(t, user.ID, current.ID)

	_, exists, err := kv.Get(ctx, SessionKey)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSessionService_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("restores persisted user", func(t *testing.T) {
		s := store.New()
		userRepo := repositories.NewMemoryUserRepository(s)
		kv := kvstore.NewMemoryStore()

		raw, err := json.Marshal(db_models.User{ID: "42", Name: "Restored", Email: "r@example.com"})
		require.NoError(t, err)
		require.NoError(t, kv.Set(ctx, SessionKey, string(raw)))

		svc := NewSessionService(userRepo, kv)
		assert.True(t, svc.Loading())

		svc.Restore(ctx)

		assert.False(t, svc.Loading())
		current, authenticated := svc.Current()
		require.True(t, authenticated)
		assert.Equal(t, "42", current.ID)
	})

	t.Run("anonymous without key", func(t *testing.T) {
		svc, _, _ := newSessionFixture(t)
		svc.Restore(ctx)

		assert.False(t, svc.Loading())
		_, authenticated := svc.Current()
		assert.False(t, authenticated)
	})

	t.Run("unreadable record clears loading", func(t *testing.T) {
		s := store.New()
		kv := kvstore.NewMemoryStore()
		require.NoError(t, kv.Set(ctx, SessionKey, "{not json"))

		svc := NewSessionService(repositories.NewMemoryUserRepository(s), kv)
		svc.Restore(ctx)

		assert.False(t, svc.Loading())
		_, authenticated := svc.Current()
		assert.False(t, authenticated)
	})
}

func TestSessionService_UpdateUser(t *testing.T) {
	svc, userRepo, kv := newSessionFixture(t)
	ctx := context.Background()

	t.Run("without session", func(t *testing.T) {
		_, ok := svc.UpdateUser(ctx, request_models.UpdateUserRequest{})
		assert.False(t, ok)
	})

	user, ok := svc.Login(ctx, "demo@example.com", "password")
	require.True(t, ok)

	t.Run("merges partial fields", func(t *testing.T) {
		location := "Chicago, IL"
		updated, ok := svc.UpdateUser(ctx, request_models.UpdateUserRequest{Location: &location})
		require.True(t, ok)
		assert.Equal(t, "Chicago, IL", updated.Location)
		assert.Equal(t, user.Name, updated.Name)
		assert.Equal(t, user.ID, updated.ID)

		stored, err := userRepo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Chicago, IL", stored.Location)

		raw, exists, err := kv.Get(ctx, SessionKey)
		require.NoError(t, err)
		require.True(t, exists)
		var persisted db_models.User
		require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
		assert.Equal(t, "Chicago, IL", persisted.Location)
	})
}
