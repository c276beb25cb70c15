package grpc

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dpetrovs/heirvault/internal/common"
	pb "github.com/dpetrovs/heirvault/internal/proto"
	"github.com/dpetrovs/heirvault/internal/server/models"
)

// mapError translates domain sentinels into gRPC status errors.
func mapError(err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrPaymentNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrorValidation),
		errors.Is(err, common.ErrChunkSize),
		errors.Is(err, common.ErrChunkOutOfOrder),
		errors.Is(err, common.ErrChecksumMismatch):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrQuotaExceeded),
		errors.Is(err, common.ErrDownloadLimitExceeded),
		errors.Is(err, common.ErrSharesExhausted):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, common.ErrInvalidTransition),
		errors.Is(err, common.ErrInvalidState),
		errors.Is(err, common.ErrConditionsNotMet),
		errors.Is(err, common.ErrInviteNotActive),
		errors.Is(err, common.ErrInviteExpired),
		errors.Is(err, common.ErrSessionExpired),
		errors.Is(err, common.ErrSessionTerminal),
		errors.Is(err, common.ErrUploadIncomplete):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrLedgerUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func vaultToPb(v *models.VaultRecord) *pb.Vault {
	return &pb.Vault{
		Id:                v.ID,
		OwnerId:           v.OwnerID,
		Name:              v.Name,
		Description:       v.Description,
		Status:            string(v.Status),
		Plan:              string(v.Plan),
		StorageQuotaBytes: v.StorageQuotaBytes,
		Conditions: &pb.UnlockConditions{
			UnlockAtUnix:             unixOrZero(v.Conditions.UnlockAt),
			InactivitySeconds:        int64(v.Conditions.InactivityDuration / time.Second),
			RequiredHeirApprovals:    int32(v.Conditions.RequiredHeirApprovals),
			RequiredWitnessApprovals: int32(v.Conditions.RequiredWitnessApprovals),
		},
		CreatedAtUnix:  unixOrZero(v.CreatedAt),
		ExpiresAtUnix:  unixOrZero(v.ExpiresAt),
		UnlockedAtUnix: unixOrZero(v.UnlockedAt),
	}
}

func conditionsFromPb(c *pb.UnlockConditions) models.UnlockConditions {
	if c == nil {
		return models.UnlockConditions{}
	}
	out := models.UnlockConditions{
		InactivityDuration:       time.Duration(c.InactivitySeconds) * time.Second,
		RequiredHeirApprovals:    int(c.RequiredHeirApprovals),
		RequiredWitnessApprovals: int(c.RequiredWitnessApprovals),
	}
	if c.UnlockAtUnix > 0 {
		out.UnlockAt = time.Unix(c.UnlockAtUnix, 0).UTC()
	}
	return out
}

func paymentToPb(s *models.PaymentSession) *pb.PaymentResponse {
	return &pb.PaymentResponse{
		SessionId:      s.ID,
		State:          string(s.State),
		Account:        s.Account,
		ExpectedAmount: s.ExpectedAmount,
		ExpiresAtUnix:  unixOrZero(s.ExpiresAt),
		LedgerRef:      s.LedgerRef,
	}
}

func contentToPb(c *models.ContentItem) *pb.ContentItem {
	return &pb.ContentItem{
		Id:            c.ID,
		VaultId:       c.VaultID,
		ContentType:   string(c.Type),
		Title:         c.Title,
		MimeType:      c.MimeType,
		SizeBytes:     c.SizeBytes,
		Checksum:      c.Checksum,
		CreatedAtUnix: unixOrZero(c.CreatedAt),
	}
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) CreateVault(ctx context.Context, req *pb.CreateVaultRequest) (*pb.VaultResponse, error) {
	vault, err := s.vaults.Create(ctx, callerID(ctx), req.Name, req.Description,
		models.Plan(req.Plan), conditionsFromPb(req.Conditions))
	if err != nil {
		s.logger.Error(ctx, "create vault failed", "error", err.Error())
		return nil, mapError(err)
	}
	return &pb.VaultResponse{Vault: vaultToPb(vault)}, nil
}

func (s *GRPCServer) GetVault(ctx context.Context, req *pb.GetVaultRequest) (*pb.VaultResponse, error) {
	vault, err := s.vaults.Get(ctx, callerID(ctx), req.VaultId)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.VaultResponse{Vault: vaultToPb(vault)}, nil
}

func (s *GRPCServer) FinalizeSetup(ctx context.Context, req *pb.FinalizeSetupRequest) (*pb.VaultResponse, error) {
	vault, err := s.vaults.FinalizeSetup(ctx, callerID(ctx), req.VaultId)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.VaultResponse{Vault: vaultToPb(vault)}, nil
}

func (s *GRPCServer) ApproveUnlock(ctx context.Context, req *pb.ApproveUnlockRequest) (*pb.ApproveUnlockResponse, error) {
	counts, err := s.vaults.ApproveUnlock(ctx, callerID(ctx), req.VaultId)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.ApproveUnlockResponse{
		HeirApprovals:    int32(counts.HeirApprovals),
		WitnessApprovals: int32(counts.WitnessApprovals),
	}, nil
}

func (s *GRPCServer) TriggerUnlock(ctx context.Context, req *pb.TriggerUnlockRequest) (*pb.VaultResponse, error) {
	vault, err := s.vaults.TriggerUnlock(ctx, callerID(ctx), req.VaultId, callerIsAdmin(ctx))
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.VaultResponse{Vault: vaultToPb(vault)}, nil
}

func (s *GRPCServer) DeleteVault(ctx context.Context, req *pb.DeleteVaultRequest) (*pb.VaultResponse, error) {
	vault, err := s.vaults.Delete(ctx, callerID(ctx), req.VaultId)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.VaultResponse{Vault: vaultToPb(vault)}, nil
}

func (s *GRPCServer) GenerateInvite(ctx context.Context, req *pb.GenerateInviteRequest) (*pb.GenerateInviteResponse, error) {
	token, claim, err := s.invites.Generate(ctx, callerID(ctx), req.VaultId, models.Role(req.Role))
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.GenerateInviteResponse{
		InviteId:      token.ID,
		ClaimToken:    claim,
		ShareIndex:    int32(token.ShareIndex),
		ExpiresAtUnix: token.ExpiresAt.Unix(),
	}, nil
}

func (s *GRPCServer) ClaimInvite(ctx context.Context, req *pb.ClaimInviteRequest) (*pb.ClaimInviteResponse, error) {
	member, err := s.invites.Claim(ctx, callerID(ctx), req.DisplayName, req.ClaimToken)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.ClaimInviteResponse{
		VaultId:    member.VaultID,
		MemberId:   member.ID,
		Role:       string(member.Role),
		ShareIndex: int32(member.ShareIndex),
	}, nil
}

func (s *GRPCServer) RevokeInvite(ctx context.Context, req *pb.RevokeInviteRequest) (*pb.RevokeInviteResponse, error) {
	if err := s.invites.Revoke(ctx, callerID(ctx), req.VaultId, req.InviteId); err != nil {
		return nil, mapError(err)
	}
	return &pb.RevokeInviteResponse{}, nil
}

func (s *GRPCServer) InitializePayment(ctx context.Context, req *pb.InitializePaymentRequest) (*pb.PaymentResponse, error) {
	session, err := s.payments.Initialize(ctx, callerID(ctx), req.VaultId,
		models.PaymentPurpose(req.Purpose), models.Plan(req.Plan))
	if err != nil {
		s.logger.Error(ctx, "payment initialize failed", "error", err.Error())
		return nil, mapError(err)
	}
	return paymentToPb(session), nil
}

func (s *GRPCServer) VerifyPayment(ctx context.Context, req *pb.VerifyPaymentRequest) (*pb.PaymentResponse, error) {
	session, err := s.payments.Verify(ctx, req.SessionId, req.BlockIndex)
	if err != nil {
		return nil, mapError(err)
	}
	return paymentToPb(session), nil
}

func (s *GRPCServer) ClosePayment(ctx context.Context, req *pb.ClosePaymentRequest) (*pb.PaymentResponse, error) {
	session, err := s.payments.Close(ctx, req.SessionId)
	if err != nil {
		return nil, mapError(err)
	}
	return paymentToPb(session), nil
}

func (s *GRPCServer) BeginUpload(ctx context.Context, req *pb.BeginUploadRequest) (*pb.BeginUploadResponse, error) {
	session, err := s.uploads.Begin(ctx, callerID(ctx), req.VaultId,
		models.ContentType(req.ContentType), req.Title, req.FileName, req.MimeType,
		req.DeclaredSize, int(req.ExpectedChunks))
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.BeginUploadResponse{UploadId: session.ID}, nil
}

func (s *GRPCServer) UploadChunk(ctx context.Context, req *pb.UploadChunkRequest) (*pb.UploadChunkResponse, error) {
	session, err := s.uploads.UploadChunk(ctx, callerID(ctx), req.UploadId, int(req.Seq), req.Data)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.UploadChunkResponse{ReceivedChunks: int32(session.ReceivedChunks)}, nil
}

func (s *GRPCServer) FinishUpload(ctx context.Context, req *pb.FinishUploadRequest) (*pb.ContentItemResponse, error) {
	item, err := s.uploads.Finish(ctx, callerID(ctx), req.UploadId, req.Checksum)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.ContentItemResponse{Item: contentToPb(item)}, nil
}

func (s *GRPCServer) AbortUpload(ctx context.Context, req *pb.AbortUploadRequest) (*pb.AbortUploadResponse, error) {
	if err := s.uploads.Abort(ctx, callerID(ctx), req.UploadId); err != nil {
		return nil, mapError(err)
	}
	return &pb.AbortUploadResponse{}, nil
}

func (s *GRPCServer) ListContent(ctx context.Context, req *pb.ListContentRequest) (*pb.ListContentResponse, error) {
	items, err := s.contents.List(ctx, callerID(ctx), req.VaultId)
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]*pb.ContentItem, 0, len(items))
	for _, it := range items {
		out = append(out, contentToPb(it))
	}
	return &pb.ListContentResponse{Items: out}, nil
}

func (s *GRPCServer) DownloadContent(ctx context.Context, req *pb.DownloadContentRequest) (*pb.DownloadContentResponse, error) {
	res, err := s.contents.Download(ctx, callerID(ctx), req.VaultId, req.ContentId)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.DownloadContentResponse{
		Item:    contentToPb(res.Item),
		Payload: res.Payload,
		Url:     res.URL,
	}, nil
}

func (s *GRPCServer) DeleteContent(ctx context.Context, req *pb.DeleteContentRequest) (*pb.DeleteContentResponse, error) {
	if err := s.contents.Delete(ctx, callerID(ctx), req.VaultId, req.ContentId); err != nil {
		return nil, mapError(err)
	}
	return &pb.DeleteContentResponse{}, nil
}

func (s *GRPCServer) SetSetting(ctx context.Context, req *pb.SetSettingRequest) (*pb.SetSettingResponse, error) {
	if err := s.settings.Set(ctx, req.Key, req.Value); err != nil {
		return nil, mapError(err)
	}
	return &pb.SetSettingResponse{}, nil
}

func (s *GRPCServer) RunMaintenance(ctx context.Context, req *pb.RunMaintenanceRequest) (*pb.RunMaintenanceResponse, error) {
	rep := s.scheduler.RunOnce(ctx)
	return &pb.RunMaintenanceResponse{
		InvitesExpired: int32(rep.InvitesExpired),
		VaultsAdvanced: int32(rep.VaultsAdvanced),
		OutboxDrained:  int32(rep.OutboxDrained),
		VaultsCascaded: int32(rep.VaultsCascaded),
		UploadsEvicted: int32(rep.UploadsEvicted),
		Errors:         int32(rep.Errors),
	}, nil
}
