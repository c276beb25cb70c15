// Package client implements the gRPC transport for the vault CLI.
//
// GRPCClient wraps the generated service client, attaches the access token
// to outgoing calls via a unary interceptor, and maps gRPC status codes back
// to the package sentinel errors so command handlers never see raw codes.
package client
