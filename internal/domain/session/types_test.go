package session

import "testing"

func TestStatus_Terminal(t *testing.T) {
	terminal := []Status{StatusAuthenticated, StatusUnauthenticated, StatusDegradedAuthenticated}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Fatalf("expected %s to be terminal", s)
		}
	}
	if StatusUninitialized.Terminal() || StatusValidating.Terminal() {
		t.Fatalf("did not expect transient statuses to be terminal")
	}
}

func TestStatus_SignedIn(t *testing.T) {
	if !StatusAuthenticated.SignedIn() || !StatusDegradedAuthenticated.SignedIn() {
		t.Fatalf("expected token-holding statuses to be signed in")
	}
	if StatusUnauthenticated.SignedIn() || StatusValidating.SignedIn() {
		t.Fatalf("did not expect signed in")
	}
}
