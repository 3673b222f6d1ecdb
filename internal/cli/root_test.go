package cli

import (
	"bytes"
	"testing"
)

// executeCommand runs a command with the given args and captures output.
func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	_, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()

	formatFlag := root.PersistentFlags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("expected --format flag to exist")
	}
	if formatFlag.DefValue != "text" {
		t.Errorf("expected --format default 'text', got %q", formatFlag.DefValue)
	}
}

func TestShowRequiresID(t *testing.T) {
	_, err := executeCommand("show")
	if err == nil {
		t.Fatal("expected error when no ID provided")
	}
}

func TestShowRejectsNonNumericID(t *testing.T) {
	_, err := executeCommand("show", "abc")
	if err == nil {
		t.Fatal("expected error for non-numeric ID")
	}
	if err.Error() != "invalid property id: abc" {
		t.Errorf("err = %q", err.Error())
	}
}

func TestUpdateRequiresID(t *testing.T) {
	_, err := executeCommand("update")
	if err == nil {
		t.Fatal("expected error when no ID provided")
	}
}

func TestRemoveRequiresID(t *testing.T) {
	_, err := executeCommand("remove")
	if err == nil {
		t.Fatal("expected error when no ID provided")
	}
}

func TestAdminCommandsRequireLogin(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PROPSTORE_TOKEN", "")

	for _, args := range [][]string{
		{"add", "--name", "X"},
		{"update", "1", "--price", "1"},
		{"remove", "1"},
		{"authlogs"},
	} {
		_, err := executeCommand(args...)
		if err == nil {
			t.Errorf("%v: expected an error without a stored token", args)
			continue
		}
		if err.Error() != "not logged in, run 'propstore login' first" {
			t.Errorf("%v: err = %q", args, err.Error())
		}
	}
}
