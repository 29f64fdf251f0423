package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) List(ctx context.Context) error {
	f.calls = append(f.calls, "list")
	return nil
}
func (f *fakeExec) Cd(ctx context.Context, name string) error {
	f.calls = append(f.calls, "cd")
	f.args = append(f.args, name)
	return nil
}
func (f *fakeExec) Back(ctx context.Context) error {
	f.calls = append(f.calls, "back")
	return nil
}
func (f *fakeExec) Forward(ctx context.Context) error {
	f.calls = append(f.calls, "forward")
	return nil
}
func (f *fakeExec) Up(ctx context.Context) error {
	f.calls = append(f.calls, "up")
	return nil
}
func (f *fakeExec) Open(ctx context.Context, name string) error {
	f.calls = append(f.calls, "open")
	f.args = append(f.args, name)
	return nil
}
func (f *fakeExec) Edit(ctx context.Context, name string) error {
	f.calls = append(f.calls, "edit")
	f.args = append(f.args, name)
	return nil
}
func (f *fakeExec) Get(ctx context.Context, name, dest string) error {
	f.calls = append(f.calls, "get")
	f.args = append(f.args, name, dest)
	return nil
}
func (f *fakeExec) Types(ctx context.Context) error {
	f.calls = append(f.calls, "types")
	return nil
}
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Status(ctx context.Context) error {
	f.calls = append(f.calls, "status")
	return nil
}

func TestRunREPL_BrowseAndLoginFlow(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"ls",
		"cd docs",
		"open readme.md",
		"login",
		"help",
		"edit readme.md",
		"back",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"list", "cd", "open", "login", "edit", "back"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_SpacesInNames(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("cd my documents\nopen annual report.pdf\nquit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.args) != 2 || exec.args[0] != "my documents" || exec.args[1] != "annual report.pdf" {
		t.Fatalf("args mismatch: %v", exec.args)
	}
}

func TestRunREPL_GetWithDestination(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("get report.pdf /tmp/out.pdf\nget plain.txt\nexit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	want := []string{"report.pdf", "/tmp/out.pdf", "plain.txt", ""}
	if len(exec.args) != len(want) {
		t.Fatalf("args mismatch: %v", exec.args)
	}
	for i := range want {
		if exec.args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, exec.args[i], want[i])
		}
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("cd\nopen\nedit\nget\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
