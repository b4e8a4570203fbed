package model

import (
	"strings"
	"testing"
)

func TestNewReporterIdentity_IDWinsOverEmail(t *testing.T) {
	identity := NewReporterIdentity("user-42", "someone@example.com")

	if identity.Key() != "id:user-42" {
		t.Errorf("key = %q, want %q", identity.Key(), "id:user-42")
	}
	if identity.Anonymous() {
		t.Error("identity with a reporter ID should not be anonymous")
	}
}

func TestNewReporterIdentity_EmailIsHashed(t *testing.T) {
	identity := NewReporterIdentity("", "someone@example.com")

	if !strings.HasPrefix(identity.Key(), "email:") {
		t.Fatalf("key = %q, want email: prefix", identity.Key())
	}
	if strings.Contains(identity.Key(), "someone@example.com") {
		t.Error("raw email leaked into the dedup key")
	}

	// Same email, same key: dedup works across reports.
	again := NewReporterIdentity("", "someone@example.com")
	if identity.Key() != again.Key() {
		t.Errorf("same email produced different keys: %q vs %q", identity.Key(), again.Key())
	}
}

func TestNewReporterIdentity_AnonymousIsUnique(t *testing.T) {
	a := NewReporterIdentity("", "")
	b := NewReporterIdentity("", "")

	if !a.Anonymous() || !b.Anonymous() {
		t.Fatal("credential-less identity should be anonymous")
	}
	if !strings.HasPrefix(a.Key(), "anon:") {
		t.Errorf("key = %q, want anon: prefix", a.Key())
	}
	if a.Key() == b.Key() {
		t.Error("two anonymous identities share a key; each report must count separately")
	}
}
