package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/server/auth"
)

type ctxKey string

const (
	userIDKey ctxKey = "userID"
	adminKey  ctxKey = "admin"
)

const methodPrefix = "/heirvault.service.HeirVaultService/"

// methodClass is the authorization level an RPC requires.
type methodClass int

const (
	classPublic methodClass = iota
	classAuthenticated
	classAdmin
)

// classFor classifies a full method name. Unknown methods require
// authentication.
func classFor(fullMethod string) methodClass {
	switch fullMethod {
	case methodPrefix + "Ping":
		return classPublic
	case methodPrefix + "DeleteVault",
		methodPrefix + "SetSetting",
		methodPrefix + "RunMaintenance":
		return classAdmin
	default:
		return classAuthenticated
	}
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	class := classFor(info.FullMethod)
	if class == classPublic {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	claims, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	if class == classAdmin && !claims.Admin {
		return nil, status.Error(codes.PermissionDenied, "admin only")
	}

	ctx = context.WithValue(ctx, userIDKey, claims.UserID)
	ctx = context.WithValue(ctx, adminKey, claims.Admin)

	return handler(ctx, req)
}

// callerID returns the authenticated user id placed by the interceptor.
func callerID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func callerIsAdmin(ctx context.Context) bool {
	admin, _ := ctx.Value(adminKey).(bool)
	return admin
}
