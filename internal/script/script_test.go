package script

import (
	"reflect"
	"testing"
)

func TestScript(t *testing.T) {
	restart := New().Comment("Restart Nginx").Command("sudo service nginx restart")

	s := New().
		Comment("Installing").
		Command("echo hi").
		Command("mkdir -p x").
		Append(restart).
		Append(nil)

	if len(s.Steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(s.Steps))
	}

	want := []string{"echo hi", "mkdir -p x", "sudo service nginx restart"}
	if got := s.Commands(); !reflect.DeepEqual(got, want) {
		t.Errorf("Commands() = %v, want %v", got, want)
	}

	if s.Steps[0].Kind != KindComment || s.Steps[1].Kind != KindCommand {
		t.Errorf("unexpected step kinds: %+v", s.Steps[:2])
	}

	expected := "# Installing\necho hi\nmkdir -p x\n# Restart Nginx\nsudo service nginx restart\n"
	if s.String() != expected {
		t.Errorf("String() = %q, want %q", s.String(), expected)
	}
}

func TestEmptyScript(t *testing.T) {
	s := New()
	if s.Commands() != nil {
		t.Error("empty script should have no commands")
	}
	if s.String() != "" {
		t.Error("empty script should render empty")
	}
}
