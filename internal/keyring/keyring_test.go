package keyring

import (
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetAPIKey(t *testing.T) {
	gokeyring.MockInit()

	if err := SetAPIKey("  AIzaSyTestKey1234 "); err != nil {
		t.Fatalf("SetAPIKey() failed: %v", err)
	}

	got, err := GetAPIKey()
	if err != nil {
		t.Fatalf("GetAPIKey() failed: %v", err)
	}
	if got != "AIzaSyTestKey1234" {
		t.Errorf("GetAPIKey() = %q, want trimmed key", got)
	}
}

func TestSetAPIKeyEmpty(t *testing.T) {
	gokeyring.MockInit()

	for _, key := range []string{"", "   "} {
		if err := SetAPIKey(key); err == nil {
			t.Errorf("SetAPIKey(%q) should return an error", key)
		}
	}
}

func TestGetAPIKeyNotFound(t *testing.T) {
	gokeyring.MockInit()
	_ = DeleteAPIKey()

	_, err := GetAPIKey()
	if err != ErrNotFound {
		t.Errorf("GetAPIKey() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteAPIKey(t *testing.T) {
	gokeyring.MockInit()

	if err := SetAPIKey("secret-key"); err != nil {
		t.Fatalf("SetAPIKey() failed: %v", err)
	}
	if err := DeleteAPIKey(); err != nil {
		t.Fatalf("DeleteAPIKey() failed: %v", err)
	}
	if _, err := GetAPIKey(); err != ErrNotFound {
		t.Errorf("After DeleteAPIKey(), GetAPIKey() error = %v, want %v", err, ErrNotFound)
	}
	if err := DeleteAPIKey(); err != ErrNotFound {
		t.Errorf("second DeleteAPIKey() error = %v, want %v", err, ErrNotFound)
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()

	if !IsAvailable() {
		t.Error("IsAvailable() = false, want true in mock mode")
	}
}

func TestMask(t *testing.T) {
	tests := map[string]string{
		"":              "",
		"abc":           "***",
		"abcd":          "****",
		"AIzaSyKey1234": "*********1234",
	}
	for in, want := range tests {
		if got := Mask(in); got != want {
			t.Errorf("Mask(%q) = %q, want %q", in, got, want)
		}
	}
}
