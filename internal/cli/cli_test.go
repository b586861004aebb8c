package cli

import (
	"strings"
	"testing"
)

func TestRootWithoutArgsPrintsHelp(t *testing.T) {
	got := execute(t)
	if got.err != nil {
		t.Fatalf("execute() error: %v", got.err)
	}
	if !strings.Contains(got.stdout, "pkgpulse [packages...]") {
		t.Errorf("help output = %q", got.stdout)
	}
}

func TestVersionFlag(t *testing.T) {
	got := execute(t, "--version")
	if got.err != nil {
		t.Fatalf("execute() error: %v", got.err)
	}
	if !strings.Contains(got.stdout, "pkgpulse version") {
		t.Errorf("version output = %q", got.stdout)
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		got := execute(t, "completion", shell)
		if got.err != nil {
			t.Errorf("completion %s: %v", shell, got.err)
		}
		if got.stdout == "" {
			t.Errorf("completion %s produced no output", shell)
		}
	}
	if got := execute(t, "completion", "tcsh"); got.err == nil {
		t.Error("completion tcsh should fail")
	}
}
