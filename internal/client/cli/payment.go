package cli

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"
)

func (a *App) InitializePayment(ctx context.Context) error {

	vaultID, err := GetSimpleText(a.reader, "Vault id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	purpose, err := GetSimpleText(a.reader, "Purpose (vault_creation/plan_renewal)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	plan, err := GetSimpleText(a.reader, "Plan (free/premium)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	payment, err := a.api.InitializePayment(ctx, vaultID, purpose, plan)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Payment session %s opened", payment.SessionID)
	log.Printf("  send %d to account %s before %s",
		payment.ExpectedAmount, payment.Account, payment.ExpiresAt.Format(time.RFC3339))
	return nil
}

func (a *App) VerifyPayment(ctx context.Context) error {

	sessionID, err := GetSimpleText(a.reader, "Session id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	blockStr, err := GetSimpleText(a.reader, "Ledger block index with your transfer", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	blockIndex, err := strconv.ParseUint(blockStr, 10, 64)
	if err != nil {
		log.Printf("bad block index: %v", err)
		return err
	}

	payment, err := a.api.VerifyPayment(ctx, sessionID, blockIndex)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Session %s is now %s", payment.SessionID, payment.State)
	if payment.LedgerRef != "" {
		log.Printf("  matched ledger transfer %s", payment.LedgerRef)
	}
	return nil
}

func (a *App) ClosePayment(ctx context.Context) error {

	sessionID, err := GetSimpleText(a.reader, "Session id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	payment, err := a.api.ClosePayment(ctx, sessionID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Session %s is now %s", payment.SessionID, payment.State)
	return nil
}
