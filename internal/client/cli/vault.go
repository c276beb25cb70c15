package cli

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"
)

func (a *App) askInt(prompt string) (int, error) {
	s, err := GetSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// CreateVault walks the user through opening a vault in Draft. The vault
// only becomes usable after its creation payment is confirmed.
func (a *App) CreateVault(ctx context.Context) error {

	name, err := GetSimpleText(a.reader, "Vault name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	plan, err := GetSimpleText(a.reader, "Plan (free/premium)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	unlockAtStr, err := GetSimpleText(a.reader, "Unlock date (RFC3339, empty for none)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	var unlockAtUnix int64
	if unlockAtStr != "" {
		ts, err := time.Parse(time.RFC3339, unlockAtStr)
		if err != nil {
			log.Printf("bad date: %v", err)
			return err
		}
		unlockAtUnix = ts.Unix()
	}

	inactivityDays, err := a.askInt("Owner inactivity threshold in days (0 for none)")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	heirApprovals, err := a.askInt("Required heir approvals (0 for none)")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	witnessApprovals, err := a.askInt("Required witness approvals (0 for none)")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	vault, err := a.api.CreateVault(ctx, name, description, plan,
		unlockAtUnix, int64(inactivityDays)*24*3600, heirApprovals, witnessApprovals)
	if err != nil {
		log.Printf("create failed: %v", err)
		return err
	}

	log.Printf("Vault %s created in status %s. Initialize and confirm the creation payment to proceed.", vault.ID, vault.Status)
	return nil
}

func (a *App) ShowVault(ctx context.Context) error {

	vaultID, err := GetSimpleText(a.reader, "Vault id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	vault, err := a.api.GetVault(ctx, vaultID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Vault %s (%s)", vault.ID, vault.Name)
	log.Printf("  status: %s, plan: %s, quota: %d bytes", vault.Status, vault.Plan, vault.StorageQuotaBytes)
	if !vault.UnlockAt.IsZero() {
		log.Printf("  unlocks at: %s", vault.UnlockAt.Format(time.RFC3339))
	}
	if vault.InactivityDuration > 0 {
		log.Printf("  inactivity threshold: %s", vault.InactivityDuration)
	}
	log.Printf("  required approvals: %d heirs, %d witnesses", vault.RequiredHeirApprovals, vault.RequiredWitnessApprovals)
	if !vault.ExpiresAt.IsZero() {
		log.Printf("  plan expires: %s", vault.ExpiresAt.Format(time.RFC3339))
	}
	if !vault.UnlockedAt.IsZero() {
		log.Printf("  unlocked at: %s", vault.UnlockedAt.Format(time.RFC3339))
	}
	return nil
}

func (a *App) FinalizeSetup(ctx context.Context) error {

	vaultID, err := GetSimpleText(a.reader, "Vault id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	vault, err := a.api.FinalizeSetup(ctx, vaultID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Vault %s is now %s", vault.ID, vault.Status)
	return nil
}

func (a *App) ApproveUnlock(ctx context.Context) error {

	vaultID, err := GetSimpleText(a.reader, "Vault id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	tally, err := a.api.ApproveUnlock(ctx, vaultID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Approval recorded: %d heir, %d witness approvals so far", tally.HeirApprovals, tally.WitnessApprovals)
	return nil
}

func (a *App) TriggerUnlock(ctx context.Context) error {

	vaultID, err := GetSimpleText(a.reader, "Vault id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	vault, err := a.api.TriggerUnlock(ctx, vaultID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Vault %s is now %s", vault.ID, vault.Status)
	return nil
}
