package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool                            { return s.loggedIn }
func (s *stubExec) Login(ctx context.Context) error             { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error            { return s.record("logout") }
func (s *stubExec) CreateVault(ctx context.Context) error       { return s.record("create") }
func (s *stubExec) ShowVault(ctx context.Context) error         { return s.record("show") }
func (s *stubExec) FinalizeSetup(ctx context.Context) error     { return s.record("finalize") }
func (s *stubExec) ApproveUnlock(ctx context.Context) error     { return s.record("approve") }
func (s *stubExec) TriggerUnlock(ctx context.Context) error     { return s.record("trigger") }
func (s *stubExec) GenerateInvite(ctx context.Context) error    { return s.record("invite") }
func (s *stubExec) ClaimInvite(ctx context.Context) error       { return s.record("claim") }
func (s *stubExec) RevokeInvite(ctx context.Context) error      { return s.record("revoke") }
func (s *stubExec) InitializePayment(ctx context.Context) error { return s.record("pay") }
func (s *stubExec) VerifyPayment(ctx context.Context) error     { return s.record("verify") }
func (s *stubExec) ClosePayment(ctx context.Context) error      { return s.record("closepay") }
func (s *stubExec) UploadFile(ctx context.Context) error        { return s.record("upload") }
func (s *stubExec) ListContent(ctx context.Context) error       { return s.record("list") }
func (s *stubExec) DownloadContent(ctx context.Context) error   { return s.record("download") }
func (s *stubExec) DeleteContent(ctx context.Context) error     { return s.record("rmitem") }
func (s *stubExec) DeleteVault(ctx context.Context) error       { return s.record("rmvault") }
func (s *stubExec) SetSetting(ctx context.Context) error        { return s.record("set") }
func (s *stubExec) RunMaintenance(ctx context.Context) error    { return s.record("maint") }

func runWithInput(t *testing.T, a execIface, input string) []string {
	t.Helper()

	orig := printlnFn
	t.Cleanup(func() { printlnFn = orig })

	var printed []string
	printlnFn = func(args ...any) (int, error) {
		for _, arg := range args {
			if s, ok := arg.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), a, func() string { return "online" }, scanner)
	return printed
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	s := &stubExec{loggedIn: true}

	runWithInput(t, s, "login\ncreate\ninvite\npay\nupload\nlist\nmaint\nexit\n")

	want := []string{"login", "create", "invite", "pay", "upload", "list", "maint"}
	if len(s.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", s.calls, want)
	}
	for n, name := range want {
		if s.calls[n] != name {
			t.Fatalf("call %d = %q, want %q", n, s.calls[n], name)
		}
	}
}

func TestRunREPL_UnknownCommandReported(t *testing.T) {
	s := &stubExec{}

	printed := runWithInput(t, s, "frobnicate\nexit\n")

	found := false
	for _, line := range printed {
		if strings.Contains(line, "Unknown command: frobnicate") {
			found = true
		}
	}
	if !found {
		t.Fatalf("unknown command not reported: %v", printed)
	}
	if len(s.calls) != 0 {
		t.Fatalf("unexpected calls: %v", s.calls)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	s := &stubExec{}
	runWithInput(t, s, "")
	// reaching here means the loop returned
}

func TestRunREPL_HelpDependsOnLogin(t *testing.T) {
	s := &stubExec{loggedIn: false}
	printed := runWithInput(t, s, "help\nexit\n")

	found := false
	for _, line := range printed {
		if strings.Contains(line, "login, exit") {
			found = true
		}
	}
	if !found {
		t.Fatalf("logged-out help not shown: %v", printed)
	}
}
