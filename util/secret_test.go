package util

import (
	"fmt"
	"strings"
	"testing"
)

func TestSecretNeverFormatsItsValue(t *testing.T) {
	secret := NewSecret("super-secret-key")

	for _, formatted := range []string{
		fmt.Sprintf("%v", secret),
		fmt.Sprintf("%+v", secret),
		fmt.Sprintf("%#v", secret),
		fmt.Sprintf("%s", secret),
		fmt.Sprint(secret),
	} {
		if strings.Contains(formatted, "super-secret-key") {
			t.Fatalf("secret leaked through formatting: %q", formatted)
		}
	}
}

func TestSecretExposeReturnsValue(t *testing.T) {
	secret := NewSecret("super-secret-key")
	if secret.Expose() != "super-secret-key" {
		t.Fatalf("expected raw value from Expose, got %q", secret.Expose())
	}
}
