package cli

import (
	"context"
	"log"
	"os"
)

// Admin commands. These require a token minted with the admin flag;
// the server rejects them otherwise.

func (a *App) DeleteVault(ctx context.Context) error {

	vaultID, err := GetSimpleText(a.reader, "Vault id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	confirm, err := GetSimpleText(a.reader, "This schedules the vault and all its content for removal. Type the vault id again to confirm", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if confirm != vaultID {
		log.Printf("Confirmation mismatch, aborted")
		return nil
	}

	vault, err := a.api.DeleteVault(ctx, vaultID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Vault %s is now %s", vault.ID, vault.Status)
	return nil
}

func (a *App) SetSetting(ctx context.Context) error {

	key, err := GetSimpleText(a.reader, "Setting key (e.g. plan_price_premium)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	value, err := GetSimpleText(a.reader, "Value", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.api.SetSetting(ctx, key, value); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Setting %s updated", key)
	return nil
}

func (a *App) RunMaintenance(ctx context.Context) error {

	report, err := a.api.RunMaintenance(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Maintenance pass done: %d invites expired, %d vaults advanced, %d outbox entries drained, %d vaults cascaded, %d uploads evicted, %d errors",
		report.InvitesExpired, report.VaultsAdvanced, report.OutboxDrained,
		report.VaultsCascaded, report.UploadsEvicted, report.Errors)
	return nil
}
