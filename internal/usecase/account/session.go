package account

import (
	"sync"

	domuser "example.com/storefront/internal/domain/user"
)

// Session bridges the provider's current-user observable to synchronous
// consumers. Loading stays true until the provider's first callback; after
// that Current reflects the latest signed-in/signed-out state and any
// provider-reported fault.
type Session struct {
	mu          sync.Mutex
	user        *domuser.Identity
	loading     bool
	err         error
	unsubscribe func()
}

func NewSession(provider Provider) *Session {
	s := &Session{loading: true}
	s.unsubscribe = provider.Subscribe(func(id *domuser.Identity, err error) {
		s.mu.Lock()
		s.user = id
		s.err = err
		s.loading = false
		s.mu.Unlock()
	})
	return s
}

func (s *Session) Current() (user *domuser.Identity, loading bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.loading, s.err
}

func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}
