package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"spontrip/internal/models/db_models"
	"spontrip/internal/models/request_models"
	"spontrip/internal/repositories"
	"spontrip/pkg/kvstore"
	"spontrip/pkg/utils"
)

// SessionKey is the durable-storage key holding the serialized current
// user. Absence of the key means no session.
const SessionKey = "spontrip_user"

// SessionServiceInterface owns "who is currently logged in". The state
// machine is: Uninitialized -> Restoring -> {Authenticated, Anonymous};
// logout always lands in Anonymous, update stays Authenticated with the
// same identity. Login/Signup/UpdateUser report failure as a nil/false
// result, never as a panic or an unhandled error.
type SessionServiceInterface interface {
	Restore(ctx context.Context)
	Loading() bool
	Current() (*db_models.User, bool)
	Login(ctx context.Context, email string, password string) (*db_models.User, bool)
	Signup(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, bool)
	Logout(ctx context.Context)
	UpdateUser(ctx context.Context, request request_models.UpdateUserRequest) (*db_models.User, bool)
}

type SessionService struct {
	userRepo repositories.UserRepository
	kv       kvstore.Store

	mu          sync.RWMutex
	currentUser *db_models.User
	loading     bool
}

func NewSessionService(userRepo repositories.UserRepository, kv kvstore.Store) SessionServiceInterface {
	return &SessionService{
		userRepo: userRepo,
		kv:       kv,
		loading:  true,
	}
}

// Restore loads a persisted session at process start. Whatever happens,
// the loading flag is cleared afterwards.
func (s *SessionService) Restore(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	raw, ok, err := s.kv.Get(ctx, SessionKey)
	if err != nil {
		log.Printf("Session restore error: %v", err)
		return
	}
	if !ok {
		return
	}

	var user db_models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Printf("Session restore: discarding unreadable record: %v", err)
		return
	}

	s.mu.Lock()
	s.currentUser = &user
	s.mu.Unlock()
}

func (s *SessionService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Current returns a copy of the logged-in user, if any.
func (s *SessionService) Current() (*db_models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return nil, false
	}
	user := *s.currentUser
	return &user, true
}

func (s *SessionService) Login(ctx context.Context, email string, password string) (*db_models.User, bool) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("Login error: %v", err)
		return nil, false
	}
	if user == nil {
		return nil, false
	}

	if err := utils.ComparePasswords(user.PasswordHash, password); err != nil {
		return nil, false
	}

	if err := s.persist(ctx, user); err != nil {
		log.Printf("Login error: %v", err)
		return nil, false
	}

	s.mu.Lock()
	s.currentUser = user
	s.mu.Unlock()

	result := *user
	return &result, true
}

func (s *SessionService) Signup(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, bool) {
	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Printf("Signup error: %v", err)
		return nil, false
	}

	user := &db_models.User{
		ID:             utils.NewID(),
		Name:           request.Name,
		Email:          request.Email,
		Age:            request.Age,
		Location:       request.Location,
		PasswordHash:   passwordHash,
		ProfilePicture: request.ProfilePicture,
	}

	if err := s.userRepo.Insert(ctx, user); err != nil {
		log.Printf("Signup error: %v", err)
		return nil, false
	}

	if err := s.persist(ctx, user); err != nil {
		log.Printf("Signup error: %v", err)
		return nil, false
	}

	s.mu.Lock()
	s.currentUser = user
	s.mu.Unlock()

	result := *user
	return &result, true
}

// Logout clears the session; it never fails. A storage hiccup is logged
// and the in-memory state is cleared regardless.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.currentUser = nil
	s.mu.Unlock()

	if err := s.kv.Delete(ctx, SessionKey); err != nil {
		log.Printf("Logout: failed to clear persisted session: %v", err)
	}
}

func (s *SessionService) UpdateUser(ctx context.Context, request request_models.UpdateUserRequest) (*db_models.User, bool) {
	current, ok := s.Current()
	if !ok {
		// no session to update
		return nil, false
	}

	patch := db_models.UserPatch{
		Name:           request.Name,
		Email:          request.Email,
		Age:            request.Age,
		Location:       request.Location,
		ProfilePicture: request.ProfilePicture,
	}
	if request.Password != nil {
		passwordHash, err := utils.HashPassword(*request.Password)
		if err != nil {
			log.Printf("Update user error: %v", err)
			return nil, false
		}
		patch.PasswordHash = &passwordHash
	}

	merged, err := s.userRepo.Update(ctx, current.ID, patch)
	if err != nil {
		log.Printf("Update user error: %v", err)
		return nil, false
	}

	if err := s.persist(ctx, merged); err != nil {
		log.Printf("Update user error: %v", err)
		return nil, false
	}

	s.mu.Lock()
	s.currentUser = merged
	s.mu.Unlock()

	result := *merged
	return &result, true
}

func (s *SessionService) persist(ctx context.Context, user *db_models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, SessionKey, string(raw))
}
