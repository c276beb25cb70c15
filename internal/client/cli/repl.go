package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	CreateVault(ctx context.Context) error
	ShowVault(ctx context.Context) error
	FinalizeSetup(ctx context.Context) error
	ApproveUnlock(ctx context.Context) error
	TriggerUnlock(ctx context.Context) error
	GenerateInvite(ctx context.Context) error
	ClaimInvite(ctx context.Context) error
	RevokeInvite(ctx context.Context) error
	InitializePayment(ctx context.Context) error
	VerifyPayment(ctx context.Context) error
	ClosePayment(ctx context.Context) error
	UploadFile(ctx context.Context) error
	ListContent(ctx context.Context) error
	DownloadContent(ctx context.Context) error
	DeleteContent(ctx context.Context) error
	DeleteVault(ctx context.Context) error
	SetSetting(ctx context.Context) error
	RunMaintenance(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the vault CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers log
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("hv> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Vault:    create, show, finalize, approve, trigger")
				printlnFn("Invites:  invite, claim, revoke")
				printlnFn("Payment:  pay, verify, closepay")
				printlnFn("Content:  upload, list, download, rmitem")
				printlnFn("Admin:    rmvault, set, maint")
				printlnFn("Other:    logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "create":
			_ = a.CreateVault(ctx)
		case "show":
			_ = a.ShowVault(ctx)
		case "finalize":
			_ = a.FinalizeSetup(ctx)
		case "approve":
			_ = a.ApproveUnlock(ctx)
		case "trigger":
			_ = a.TriggerUnlock(ctx)
		case "invite":
			_ = a.GenerateInvite(ctx)
		case "claim":
			_ = a.ClaimInvite(ctx)
		case "revoke":
			_ = a.RevokeInvite(ctx)
		case "pay":
			_ = a.InitializePayment(ctx)
		case "verify":
			_ = a.VerifyPayment(ctx)
		case "closepay":
			_ = a.ClosePayment(ctx)
		case "upload":
			_ = a.UploadFile(ctx)
		case "list":
			_ = a.ListContent(ctx)
		case "download":
			_ = a.DownloadContent(ctx)
		case "rmitem":
			_ = a.DeleteContent(ctx)
		case "rmvault":
			_ = a.DeleteVault(ctx)
		case "set":
			_ = a.SetSetting(ctx)
		case "maint":
			_ = a.RunMaintenance(ctx)
		case "exit", "quit":
			return
		default:
			printlnFn(fmt.Sprintf("Unknown command: %s", cmd))
		}
	}
}
