package cli

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dpetrovs/heirvault/internal/filex"
	"github.com/dpetrovs/heirvault/internal/netx"
	"github.com/dpetrovs/heirvault/internal/shared"
)

func (a *App) ListContent(ctx context.Context) error {

	vaultID, err := GetSimpleText(a.reader, "Vault id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	items, err := a.api.ListContent(ctx, vaultID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(items) == 0 {
		log.Printf("Vault is empty")
		return nil
	}

	for _, item := range items {
		log.Printf("%s  %-10s %-30s %8d bytes  %s",
			item.ID, item.ContentType, item.Title, item.SizeBytes,
			item.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

// DownloadContent fetches a single item. Small payloads arrive inline;
// larger ones come back as a presigned link which is fetched over plain
// HTTP. Either way the bytes land in the configured download directory.
func (a *App) DownloadContent(ctx context.Context) error {

	vaultID, err := GetSimpleText(a.reader, "Vault id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	contentID, err := GetSimpleText(a.reader, "Item id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	download, err := a.api.DownloadContent(ctx, vaultID, contentID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	payload := download.Payload
	if download.URL != "" {
		payload, err = netx.FetchPresignedURL(download.URL)
		if err != nil {
			log.Printf("error fetching payload: %v", err)
			return err
		}
	}
	defer shared.WipeByteArray(payload)

	dir, err := filex.EnsureSubdDir(a.config.DownloadDir)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	path := filepath.Join(dir, download.Item.ID)
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		log.Printf("error writing file: %v", err)
		return err
	}

	log.Printf("Saved %s (%d bytes) to %s", download.Item.Title, len(payload), path)
	return nil
}

func (a *App) DeleteContent(ctx context.Context) error {

	vaultID, err := GetSimpleText(a.reader, "Vault id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	contentID, err := GetSimpleText(a.reader, "Item id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.api.DeleteContent(ctx, vaultID, contentID); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Item %s deleted", contentID)
	return nil
}
