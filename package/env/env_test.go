package env

import (
	"testing"
	"time"
)

func TestGet_String(t *testing.T) {
	t.Setenv("TEST_STRING", "hello")

	value, err := Get("TEST_STRING", "default")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "hello" {
		t.Errorf("Get() = %q, want %q", value, "hello")
	}
}

func TestGet_UnsetReturnsDefault(t *testing.T) {
	value, err := Get("TEST_UNSET_VARIABLE", "fallback")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "fallback" {
		t.Errorf("Get() = %q, want %q", value, "fallback")
	}
}

func TestGet_Int(t *testing.T) {
	t.Setenv("TEST_INT", "42")

	value, err := Get("TEST_INT", 0)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != 42 {
		t.Errorf("Get() = %d, want 42", value)
	}
}

func TestGet_Bool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")

	value, err := Get("TEST_BOOL", false)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !value {
		t.Error("Get() = false, want true")
	}
}

func TestGet_Duration(t *testing.T) {
	t.Setenv("TEST_DURATION", "45s")

	value, err := Get("TEST_DURATION", time.Second)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != 45*time.Second {
		t.Errorf("Get() = %v, want 45s", value)
	}
}

func TestGet_ParseFailureReturnsDefaultAndError(t *testing.T) {
	t.Setenv("TEST_BAD_INT", "not-a-number")

	value, err := Get("TEST_BAD_INT", 7)
	if err == nil {
		t.Fatal("Get() error = nil, want parse error")
	}
	if value != 7 {
		t.Errorf("Get() = %d, want default 7", value)
	}
}

func TestMustGet_PanicsOnParseFailure(t *testing.T) {
	t.Setenv("TEST_MUST_BAD", "oops")

	defer func() {
		if recover() == nil {
			t.Error("MustGet() did not panic on parse failure")
		}
	}()

	MustGet("TEST_MUST_BAD", 1)
}
