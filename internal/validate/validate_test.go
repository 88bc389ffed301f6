package validate_test

import (
	"testing"

	"teststore/internal/validate"
)

func TestPresence(t *testing.T) {
	form := map[string]string{"name": "Jane", "email": "   ", "address": ""}
	get := func(k string) string { return form[k] }

	errs := validate.Presence(get, []validate.Field{
		{Name: "name", Label: "Full Name"},
		{Name: "email", Label: "Email Address"},
		{Name: "address", Label: "Shipping Address"},
	})

	if len(errs) != 2 {
		t.Fatalf("want 2 errors, got %d: %v", len(errs), errs)
	}
	if errs["email"] != "Email Address is required" {
		t.Fatalf("unexpected email message: %q", errs["email"])
	}
	if errs["address"] != "Shipping Address is required" {
		t.Fatalf("unexpected address message: %q", errs["address"])
	}
	if _, ok := errs["name"]; ok {
		t.Fatal("name was present, must not be reported")
	}
}

func TestEmail(t *testing.T) {
	good := []string{"jane@example.com", "a.b+c@sub.domain.org"}
	bad := []string{"", "nope", "a@b", "spaces in@mail.com"}
	for _, s := range good {
		if !validate.Email(s) {
			t.Errorf("Email(%q) = false, want true", s)
		}
	}
	for _, s := range bad {
		if validate.Email(s) {
			t.Errorf("Email(%q) = true, want false", s)
		}
	}
}

func TestProductID(t *testing.T) {
	if id, ok := validate.ProductID(" 3 "); !ok || id != 3 {
		t.Fatalf("want (3,true), got (%d,%v)", id, ok)
	}
	for _, s := range []string{"", "0", "-1", "abc", "1.5"} {
		if _, ok := validate.ProductID(s); ok {
			t.Errorf("ProductID(%q) accepted", s)
		}
	}
}
