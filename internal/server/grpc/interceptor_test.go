package grpc

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/server/auth"
)

// helper to build server
func newTestServer(secret string) *GRPCServer {
	return &GRPCServer{
		logger:    nopLogger{},
		jwtSecret: []byte(secret),
	}
}

func ctxWithToken(t *testing.T, secret, userID string, admin bool) context.Context {
	t.Helper()
	tok, err := auth.GenerateToken(userID, admin, []byte(secret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	md := metadata.Pairs(common.AccessTokenHeaderName, tok)
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestClassFor(t *testing.T) {
	cases := []struct {
		method string
		want   methodClass
	}{
		{methodPrefix + "Ping", classPublic},
		{methodPrefix + "GetVault", classAuthenticated},
		{methodPrefix + "ClaimInvite", classAuthenticated},
		{methodPrefix + "DeleteVault", classAdmin},
		{methodPrefix + "SetSetting", classAdmin},
		{methodPrefix + "RunMaintenance", classAdmin},
		{"/other.Service/Whatever", classAuthenticated},
	}
	for _, tc := range cases {
		if got := classFor(tc.method); got != tc.want {
			t.Fatalf("classFor(%s) = %d, want %d", tc.method, got, tc.want)
		}
	}
}

func TestInterceptor_Ping_AllowsWithoutToken(t *testing.T) {
	s := newTestServer("secret")

	info := &grpc.UnaryServerInfo{FullMethod: methodPrefix + "Ping"}
	handlerCalled := false

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newTestServer("secret")

	info := &grpc.UnaryServerInfo{FullMethod: methodPrefix + "GetVault"}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}
}

func TestInterceptor_InvalidToken(t *testing.T) {
	s := newTestServer("secret")

	md := metadata.Pairs(common.AccessTokenHeaderName, "garbage")
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: methodPrefix + "GetVault"}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}
}

func TestInterceptor_ExpiredToken(t *testing.T) {
	s := newTestServer("secret")

	tok, err := auth.GenerateToken("u1", false, []byte("secret"), -time.Second)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	md := metadata.Pairs(common.AccessTokenHeaderName, tok)
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: methodPrefix + "GetVault"}

	_, err = s.accessTokenInterceptor(ctx, nil, info, func(context.Context, interface{}) (interface{}, error) {
		return nil, nil
	})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}
	// expiry has its own message so clients can prompt for a fresh token
	if got := status.Convert(err).Message(); got != "token expired" {
		t.Fatalf("message = %q, want %q", got, "token expired")
	}
}

func TestInterceptor_PropagatesIdentity(t *testing.T) {
	s := newTestServer("secret")

	ctx := ctxWithToken(t, "secret", "user-7", false)
	info := &grpc.UnaryServerInfo{FullMethod: methodPrefix + "GetVault"}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		if callerID(ctx) != "user-7" {
			t.Fatalf("callerID = %q", callerID(ctx))
		}
		if callerIsAdmin(ctx) {
			t.Fatal("unexpected admin flag")
		}
		return nil, nil
	}

	if _, err := s.accessTokenInterceptor(ctx, nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInterceptor_AdminMethods(t *testing.T) {
	s := newTestServer("secret")
	info := &grpc.UnaryServerInfo{FullMethod: methodPrefix + "DeleteVault"}

	// plain user is rejected
	ctx := ctxWithToken(t, "secret", "user-7", false)
	_, err := s.accessTokenInterceptor(ctx, nil, info, func(context.Context, interface{}) (interface{}, error) {
		t.Fatal("handler should not be called")
		return nil, nil
	})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("want PermissionDenied, got %v", err)
	}

	// admin passes
	ctx = ctxWithToken(t, "secret", "root", true)
	called := false
	_, err = s.accessTokenInterceptor(ctx, nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		called = true
		if !callerIsAdmin(ctx) {
			t.Fatal("admin flag lost")
		}
		return nil, nil
	})
	if err != nil || !called {
		t.Fatalf("admin call: called=%v err=%v", called, err)
	}
}
