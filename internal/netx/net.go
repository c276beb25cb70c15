// Package netx holds plain-HTTP helpers used by the CLI for object
// storage access that bypasses the gRPC channel.
package netx

import (
	"fmt"
	"io"
	"net/http"
)

// FetchPresignedURL downloads the object a presigned GET link points at and
// returns its body. Large vault payloads are served this way instead of
// being streamed through the gRPC response.
func FetchPresignedURL(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("download failed: %s; body: %s", resp.Status, string(b))
	}
	return io.ReadAll(resp.Body)
}
