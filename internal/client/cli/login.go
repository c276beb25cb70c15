package cli

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/dpetrovs/heirvault/internal/server/auth"
	"github.com/dpetrovs/heirvault/internal/shared"
)

// Login stores an access token for subsequent calls. The server does not
// issue tokens itself; the user either pastes one handed out by the
// operator, or mints one locally with the shared signing secret.
func (a *App) Login(ctx context.Context) error {

	token, err := GetSimpleText(a.reader, "Paste an access token (leave empty to mint one locally)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if token == "" {
		userID, err := GetSimpleText(a.reader, "Enter user id", os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}

		adminAnswer, err := GetSimpleText(a.reader, "Admin token? (y/N)", os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}

		secret, err := GetSecret("Enter signing secret", os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		defer shared.WipeByteArray(secret)

		token, err = auth.GenerateToken(userID, adminAnswer == "y" || adminAnswer == "Y", secret, 15*time.Minute)
		if err != nil {
			log.Printf("error minting token: %v", err)
			return err
		}
	}

	a.accessToken = token
	a.api.SetAccessToken(token)
	log.Printf("Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.accessToken = ""
	a.api.SetAccessToken("")
	log.Printf("Logged out")
	return nil
}
