package buildinfo

import (
	"strings"
	"testing"
)

func TestUserAgent(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "v1.2.3"
	if got := UserAgent(); got != "pkgpulse/v1.2.3" {
		t.Errorf("UserAgent() = %q, want %q", got, "pkgpulse/v1.2.3")
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	for _, want := range []string{"{{.Name}}", Version, Commit, Date} {
		if !strings.Contains(tmpl, want) {
			t.Errorf("Template() missing %q: %s", want, tmpl)
		}
	}
}
