package handlers

import (
	"sync"

	"github.com/google/uuid"

	"github.com/nfrund/gatehouse/internal/login"
	"github.com/nfrund/gatehouse/internal/presenter"
)

// Screen is one mounted login screen: a controller plus its dialog buffer
// and, after a successful sign-in, the identity token waiting to be turned
// into a cookie.
type Screen struct {
	ID         string
	Controller *login.Controller
	Dialog     *presenter.Dialog

	mu    sync.Mutex
	token string
}

// completeSignIn is the controller's success collaborator: it parks the
// identity token until the rendering layer picks it up.
func (s *Screen) completeSignIn(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Token returns the parked identity token, or "" while signing in.
func (s *Screen) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// ScreenStore tracks mounted screens by ID.
type ScreenStore struct {
	mu      sync.RWMutex
	screens map[string]*Screen
}

// NewScreenStore creates an empty store.
func NewScreenStore() *ScreenStore {
	return &ScreenStore{screens: make(map[string]*Screen)}
}

// Get looks up a mounted screen.
func (st *ScreenStore) Get(id string) (*Screen, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	scr, ok := st.screens[id]
	return scr, ok
}

// Put registers a screen under a fresh ID and returns it.
func (st *ScreenStore) Put(scr *Screen) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.screens[scr.ID] = scr
}

// Len reports how many screens are mounted.
func (st *ScreenStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.screens)
}

// Remove unmounts a screen: the controller is shut down and the entry
// dropped. Removing an unknown ID is a no-op.
func (st *ScreenStore) Remove(id string) {
	st.mu.Lock()
	scr, ok := st.screens[id]
	delete(st.screens, id)
	st.mu.Unlock()
	if ok {
		scr.Controller.Shutdown()
	}
}

// NewID returns a fresh screen identifier.
func NewID() string {
	return uuid.NewString()
}
