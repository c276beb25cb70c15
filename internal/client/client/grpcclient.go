package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dpetrovs/heirvault/internal/client/models"
	"github.com/dpetrovs/heirvault/internal/common"
	pb "github.com/dpetrovs/heirvault/internal/proto"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.HeirVaultServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the current access token to every call.
// Tokens are minted outside the server, so there is no refresh path; an
// expired token surfaces as ErrUnauthorized and the user logs in again.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewHeirVaultClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewHeirVaultServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) SetAccessToken(token string) {
	s.accessToken = token
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument, codes.FailedPrecondition, codes.ResourceExhausted:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func timeOrZero(unix int64) time.Time {
	if unix == 0 {
		return time.Time{}
	}
	return time.Unix(unix, 0).UTC()
}

func vaultFromPb(v *pb.Vault) *models.Vault {
	out := &models.Vault{
		ID:                v.Id,
		OwnerID:           v.OwnerId,
		Name:              v.Name,
		Description:       v.Description,
		Status:            v.Status,
		Plan:              v.Plan,
		StorageQuotaBytes: v.StorageQuotaBytes,
		CreatedAt:         timeOrZero(v.CreatedAtUnix),
		ExpiresAt:         timeOrZero(v.ExpiresAtUnix),
		UnlockedAt:        timeOrZero(v.UnlockedAtUnix),
	}
	if c := v.Conditions; c != nil {
		out.UnlockAt = timeOrZero(c.UnlockAtUnix)
		out.InactivityDuration = time.Duration(c.InactivitySeconds) * time.Second
		out.RequiredHeirApprovals = int(c.RequiredHeirApprovals)
		out.RequiredWitnessApprovals = int(c.RequiredWitnessApprovals)
	}
	return out
}

func itemFromPb(i *pb.ContentItem) models.ContentItem {
	return models.ContentItem{
		ID:          i.Id,
		VaultID:     i.VaultId,
		ContentType: i.ContentType,
		Title:       i.Title,
		MimeType:    i.MimeType,
		SizeBytes:   i.SizeBytes,
		Checksum:    i.Checksum,
		CreatedAt:   timeOrZero(i.CreatedAtUnix),
	}
}

func paymentFromPb(p *pb.PaymentResponse) *models.Payment {
	return &models.Payment{
		SessionID:      p.SessionId,
		State:          p.State,
		Account:        p.Account,
		ExpectedAmount: p.ExpectedAmount,
		ExpiresAt:      timeOrZero(p.ExpiresAtUnix),
		LedgerRef:      p.LedgerRef,
	}
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) CreateVault(ctx context.Context, name, description, plan string,
	unlockAtUnix, inactivitySeconds int64, heirApprovals, witnessApprovals int) (*models.Vault, error) {

	req := &pb.CreateVaultRequest{
		Name:        name,
		Description: description,
		Plan:        plan,
		Conditions: &pb.UnlockConditions{
			UnlockAtUnix:             unlockAtUnix,
			InactivitySeconds:        inactivitySeconds,
			RequiredHeirApprovals:    int32(heirApprovals),
			RequiredWitnessApprovals: int32(witnessApprovals),
		},
	}

	resp, err := s.client.CreateVault(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return vaultFromPb(resp.Vault), nil
}

func (s *GRPCClient) GetVault(ctx context.Context, vaultID string) (*models.Vault, error) {
	resp, err := s.client.GetVault(ctx, &pb.GetVaultRequest{VaultId: vaultID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return vaultFromPb(resp.Vault), nil
}

func (s *GRPCClient) FinalizeSetup(ctx context.Context, vaultID string) (*models.Vault, error) {
	resp, err := s.client.FinalizeSetup(ctx, &pb.FinalizeSetupRequest{VaultId: vaultID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return vaultFromPb(resp.Vault), nil
}

func (s *GRPCClient) ApproveUnlock(ctx context.Context, vaultID string) (*models.ApprovalTally, error) {
	resp, err := s.client.ApproveUnlock(ctx, &pb.ApproveUnlockRequest{VaultId: vaultID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.ApprovalTally{
		HeirApprovals:    int(resp.HeirApprovals),
		WitnessApprovals: int(resp.WitnessApprovals),
	}, nil
}

func (s *GRPCClient) TriggerUnlock(ctx context.Context, vaultID string) (*models.Vault, error) {
	resp, err := s.client.TriggerUnlock(ctx, &pb.TriggerUnlockRequest{VaultId: vaultID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return vaultFromPb(resp.Vault), nil
}

func (s *GRPCClient) DeleteVault(ctx context.Context, vaultID string) (*models.Vault, error) {
	resp, err := s.client.DeleteVault(ctx, &pb.DeleteVaultRequest{VaultId: vaultID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return vaultFromPb(resp.Vault), nil
}

func (s *GRPCClient) GenerateInvite(ctx context.Context, vaultID, role string) (*models.Invite, error) {
	resp, err := s.client.GenerateInvite(ctx, &pb.GenerateInviteRequest{VaultId: vaultID, Role: role})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.Invite{
		ID:         resp.InviteId,
		ClaimToken: resp.ClaimToken,
		ShareIndex: int(resp.ShareIndex),
		ExpiresAt:  timeOrZero(resp.ExpiresAtUnix),
	}, nil
}

func (s *GRPCClient) ClaimInvite(ctx context.Context, claimToken, displayName string) (*models.Membership, error) {
	resp, err := s.client.ClaimInvite(ctx, &pb.ClaimInviteRequest{ClaimToken: claimToken, DisplayName: displayName})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.Membership{
		VaultID:    resp.VaultId,
		MemberID:   resp.MemberId,
		Role:       resp.Role,
		ShareIndex: int(resp.ShareIndex),
	}, nil
}

func (s *GRPCClient) RevokeInvite(ctx context.Context, vaultID, inviteID string) error {
	_, err := s.client.RevokeInvite(ctx, &pb.RevokeInviteRequest{VaultId: vaultID, InviteId: inviteID})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) InitializePayment(ctx context.Context, vaultID, purpose, plan string) (*models.Payment, error) {
	resp, err := s.client.InitializePayment(ctx, &pb.InitializePaymentRequest{VaultId: vaultID, Purpose: purpose, Plan: plan})
	if err != nil {
		return nil, s.mapError(err)
	}
	return paymentFromPb(resp), nil
}

func (s *GRPCClient) VerifyPayment(ctx context.Context, sessionID string, blockIndex uint64) (*models.Payment, error) {
	resp, err := s.client.VerifyPayment(ctx, &pb.VerifyPaymentRequest{SessionId: sessionID, BlockIndex: blockIndex})
	if err != nil {
		return nil, s.mapError(err)
	}
	return paymentFromPb(resp), nil
}

func (s *GRPCClient) ClosePayment(ctx context.Context, sessionID string) (*models.Payment, error) {
	resp, err := s.client.ClosePayment(ctx, &pb.ClosePaymentRequest{SessionId: sessionID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return paymentFromPb(resp), nil
}

func (s *GRPCClient) BeginUpload(ctx context.Context, vaultID, contentType, title, fileName, mimeType string,
	declaredSize int64, expectedChunks int) (string, error) {

	req := &pb.BeginUploadRequest{
		VaultId:        vaultID,
		ContentType:    contentType,
		Title:          title,
		FileName:       fileName,
		MimeType:       mimeType,
		DeclaredSize:   declaredSize,
		ExpectedChunks: int32(expectedChunks),
	}

	resp, err := s.client.BeginUpload(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.UploadId, nil
}

func (s *GRPCClient) UploadChunk(ctx context.Context, uploadID string, seq int, data []byte) error {
	_, err := s.client.UploadChunk(ctx, &pb.UploadChunkRequest{UploadId: uploadID, Seq: int32(seq), Data: data})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) FinishUpload(ctx context.Context, uploadID, checksum string) (*models.ContentItem, error) {
	resp, err := s.client.FinishUpload(ctx, &pb.FinishUploadRequest{UploadId: uploadID, Checksum: checksum})
	if err != nil {
		return nil, s.mapError(err)
	}
	item := itemFromPb(resp.Item)
	return &item, nil
}

func (s *GRPCClient) AbortUpload(ctx context.Context, uploadID string) error {
	_, err := s.client.AbortUpload(ctx, &pb.AbortUploadRequest{UploadId: uploadID})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ListContent(ctx context.Context, vaultID string) ([]models.ContentItem, error) {
	resp, err := s.client.ListContent(ctx, &pb.ListContentRequest{VaultId: vaultID})
	if err != nil {
		return nil, s.mapError(err)
	}
	items := make([]models.ContentItem, 0, len(resp.Items))
	for _, i := range resp.Items {
		items = append(items, itemFromPb(i))
	}
	return items, nil
}

func (s *GRPCClient) DownloadContent(ctx context.Context, vaultID, contentID string) (*models.Download, error) {
	resp, err := s.client.DownloadContent(ctx, &pb.DownloadContentRequest{VaultId: vaultID, ContentId: contentID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.Download{
		Item:    itemFromPb(resp.Item),
		Payload: resp.Payload,
		URL:     resp.Url,
	}, nil
}

func (s *GRPCClient) DeleteContent(ctx context.Context, vaultID, contentID string) error {
	_, err := s.client.DeleteContent(ctx, &pb.DeleteContentRequest{VaultId: vaultID, ContentId: contentID})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) SetSetting(ctx context.Context, key, value string) error {
	_, err := s.client.SetSetting(ctx, &pb.SetSettingRequest{Key: key, Value: value})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) RunMaintenance(ctx context.Context) (*models.MaintenanceReport, error) {
	resp, err := s.client.RunMaintenance(ctx, &pb.RunMaintenanceRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.MaintenanceReport{
		InvitesExpired: int(resp.InvitesExpired),
		VaultsAdvanced: int(resp.VaultsAdvanced),
		OutboxDrained:  int(resp.OutboxDrained),
		VaultsCascaded: int(resp.VaultsCascaded),
		UploadsEvicted: int(resp.UploadsEvicted),
		Errors:         int(resp.Errors),
	}, nil
}
