package domain

import "sync"

// Person is an identity that can be authorized on accounts. The credential is
// derived from the secret identifier at construction (the first three
// characters), a deliberately weak scheme kept for demo purposes.
type Person struct {
	name     string
	secretID string
	password string

	mu            sync.Mutex
	authenticated bool
	onLogin       []LoginFunc
}

// NewPerson builds a person with the credential derived from secretID.
func NewPerson(name, secretID string) *Person {
	password := secretID
	if len(password) > 3 {
		password = password[:3]
	}
	return &Person{name: name, secretID: secretID, password: password}
}

// Name returns the person's registry name.
func (p *Person) Name() string { return p.name }

// IsAuthenticated reports whether the person is currently logged in.
func (p *Person) IsAuthenticated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.authenticated
}

// SubscribeLogin registers an observer for login attempts.
func (p *Person) SubscribeLogin(fn LoginFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onLogin = append(p.onLogin, fn)
}

// Login checks the password against the stored credential. A mismatch clears
// the authenticated flag, notifies observers of the failed attempt and
// returns ErrIncorrectPassword. A match sets the flag and notifies observers
// of the success.
func (p *Person) Login(password string) error {
	if password != p.password {
		p.setAuthenticated(false)
		p.emitLogin(LoginEvent{Name: p.name, Success: false})
		return ErrIncorrectPassword
	}
	p.setAuthenticated(true)
	p.emitLogin(LoginEvent{Name: p.name, Success: true})
	return nil
}

// Logout clears the authenticated flag. It never fails and emits nothing.
func (p *Person) Logout() {
	p.setAuthenticated(false)
}

func (p *Person) String() string { return p.name }

func (p *Person) setAuthenticated(v bool) {
	p.mu.Lock()
	p.authenticated = v
	p.mu.Unlock()
}

func (p *Person) emitLogin(ev LoginEvent) {
	p.mu.Lock()
	observers := make([]LoginFunc, len(p.onLogin))
	copy(observers, p.onLogin)
	p.mu.Unlock()

	for _, fn := range observers {
		fn(ev)
	}
}
