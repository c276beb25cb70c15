package cli

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/dpetrovs/heirvault/internal/cryptox"
	"github.com/dpetrovs/heirvault/internal/shared"
)

// splitChunks cuts data into pieces of at most size bytes. The last chunk
// may be shorter; empty input yields no chunks.
func splitChunks(data []byte, size int64) [][]byte {
	if size <= 0 || len(data) == 0 {
		return nil
	}
	chunks := make([][]byte, 0, (int64(len(data))+size-1)/size)
	for start := int64(0); start < int64(len(data)); start += size {
		end := start + size
		if end > int64(len(data)) {
			end = int64(len(data))
		}
		chunks = append(chunks, data[start:end])
	}
	return chunks
}

// UploadFile reads a local file, opens an upload session and streams the
// content in order. The session is aborted on any mid-stream failure so the
// server does not hold a half-assembled item.
func (a *App) UploadFile(ctx context.Context) error {

	vaultID, err := GetSimpleText(a.reader, "Vault id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	contentType, err := GetSimpleText(a.reader, "Content type (document/credential/key/letter)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	title, err := GetSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	mimeType, err := GetSimpleText(a.reader, "MIME type", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	path, err := GetSimpleText(a.reader, "File path", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("error reading file: %v", err)
		return err
	}
	defer shared.WipeByteArray(data)

	chunks := splitChunks(data, a.config.ChunkSize)
	checksum := cryptox.ContentChecksum(data)

	uploadID, err := a.api.BeginUpload(ctx, vaultID, contentType, title,
		filepath.Base(path), mimeType, int64(len(data)), len(chunks))
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for n, chunk := range chunks {
		if err := a.api.UploadChunk(ctx, uploadID, n+1, chunk); err != nil {
			log.Printf("chunk %d failed: %v", n+1, err)
			if abortErr := a.api.AbortUpload(ctx, uploadID); abortErr != nil {
				log.Printf("abort failed: %v", abortErr)
			}
			return err
		}
	}

	item, err := a.api.FinishUpload(ctx, uploadID, checksum)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Stored %s as item %s (%d bytes)", item.Title, item.ID, item.SizeBytes)
	return nil
}
