package cli

import (
	"context"
	"log"
	"os"
	"time"
)

func (a *App) GenerateInvite(ctx context.Context) error {

	vaultID, err := GetSimpleText(a.reader, "Vault id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	role, err := GetSimpleText(a.reader, "Role (heir/witness)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	invite, err := a.api.GenerateInvite(ctx, vaultID, role)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Invite %s issued, share index %d, expires %s",
		invite.ID, invite.ShareIndex, invite.ExpiresAt.Format(time.RFC3339))
	log.Printf("Claim token (share it out of band, it is shown only once):")
	log.Printf("  %s", invite.ClaimToken)
	return nil
}

func (a *App) ClaimInvite(ctx context.Context) error {

	token, err := GetSimpleText(a.reader, "Claim token", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	displayName, err := GetSimpleText(a.reader, "Your display name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	membership, err := a.api.ClaimInvite(ctx, token, displayName)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Joined vault %s as %s (member %s, share index %d)",
		membership.VaultID, membership.Role, membership.MemberID, membership.ShareIndex)
	return nil
}

func (a *App) RevokeInvite(ctx context.Context) error {

	vaultID, err := GetSimpleText(a.reader, "Vault id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	inviteID, err := GetSimpleText(a.reader, "Invite id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.api.RevokeInvite(ctx, vaultID, inviteID); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Invite %s revoked", inviteID)
	return nil
}
