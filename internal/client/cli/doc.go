// Package cli implements the interactive vault client.
//
// The CLI is a small REPL over the gRPC API: the user logs in with an
// access token (pasted or minted locally from the shared signing secret),
// and then manages vaults, invites, payment sessions and content. Fetched
// payloads are written to a local download directory and wiped from memory
// afterwards.
package cli
