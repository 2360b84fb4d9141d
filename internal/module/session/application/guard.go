package application

import "github.com/zencareer/zenadmin/internal/module/session/domain"

// SignInPath is where unauthenticated navigation is redirected.
const SignInPath = "/auth/sign-in"

// Decision is the guard's verdict for a requested path.
type Decision int

const (
	// DecisionWait means the persisted state is still being read; render
	// nothing and ask again.
	DecisionWait Decision = iota
	// DecisionAllow lets the protected screen mount.
	DecisionAllow
	// DecisionRedirect sends the visitor to RedirectTo.
	DecisionRedirect
)

func (d Decision) String() string {
	switch d {
	case DecisionWait:
		return "wait"
	case DecisionAllow:
		return "allow"
	case DecisionRedirect:
		return "redirect"
	}
	return "unknown"
}

// Result is the full guard verdict.
type Result struct {
	Decision   Decision
	RedirectTo string
}

// Guard intercepts navigation to protected screens and consults the
// session store.
type Guard struct {
	store *Store
}

// NewGuard creates a guard over the given store.
func NewGuard(store *Store) *Guard {
	return &Guard{store: store}
}

// Check evaluates the requested path against the current session.
func (g *Guard) Check(path string) Result {
	if g.store.Loading() {
		return Result{Decision: DecisionWait}
	}
	if g.store.Current() == nil {
		return Result{Decision: DecisionRedirect, RedirectTo: SignInPath}
	}
	return Result{Decision: DecisionAllow}
}

// Watch re-evaluates the path on every session change and pushes the
// fresh verdict to fn, so a logout elsewhere in the app revokes access
// immediately. It fires once with the current verdict and returns an
// unsubscribe function.
func (g *Guard) Watch(path string, fn func(Result)) func() {
	fn(g.Check(path))
	return g.store.Subscribe(func(*domain.Session) {
		fn(g.Check(path))
	})
}
