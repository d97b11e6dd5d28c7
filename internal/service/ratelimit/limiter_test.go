package ratelimit

import "testing"

func TestAllowWithinCapacity(t *testing.T) {
	l := New()
	for i := 0; i < 3; i++ {
		if !l.Allow("a", 3, 0) {
			t.Fatalf("request %d denied under capacity", i+1)
		}
	}
	if l.Allow("a", 3, 0) {
		t.Fatalf("request allowed past capacity with no refill")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	l := New()
	if !l.Allow("a", 1, 0) {
		t.Fatalf("first request for key a denied")
	}
	if l.Allow("a", 1, 0) {
		t.Fatalf("second request for key a allowed")
	}
	if !l.Allow("b", 1, 0) {
		t.Fatalf("exhausting key a starved key b")
	}
}
