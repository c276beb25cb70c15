// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: heirvault.proto

package proto

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	HeirVaultService_Ping_FullMethodName              = "/heirvault.service.HeirVaultService/Ping"
	HeirVaultService_CreateVault_FullMethodName       = "/heirvault.service.HeirVaultService/CreateVault"
	HeirVaultService_GetVault_FullMethodName          = "/heirvault.service.HeirVaultService/GetVault"
	HeirVaultService_FinalizeSetup_FullMethodName     = "/heirvault.service.HeirVaultService/FinalizeSetup"
	HeirVaultService_ApproveUnlock_FullMethodName     = "/heirvault.service.HeirVaultService/ApproveUnlock"
	HeirVaultService_TriggerUnlock_FullMethodName     = "/heirvault.service.HeirVaultService/TriggerUnlock"
	HeirVaultService_DeleteVault_FullMethodName       = "/heirvault.service.HeirVaultService/DeleteVault"
	HeirVaultService_GenerateInvite_FullMethodName    = "/heirvault.service.HeirVaultService/GenerateInvite"
	HeirVaultService_ClaimInvite_FullMethodName       = "/heirvault.service.HeirVaultService/ClaimInvite"
	HeirVaultService_RevokeInvite_FullMethodName      = "/heirvault.service.HeirVaultService/RevokeInvite"
	HeirVaultService_InitializePayment_FullMethodName = "/heirvault.service.HeirVaultService/InitializePayment"
	HeirVaultService_VerifyPayment_FullMethodName     = "/heirvault.service.HeirVaultService/VerifyPayment"
	HeirVaultService_ClosePayment_FullMethodName      = "/heirvault.service.HeirVaultService/ClosePayment"
	HeirVaultService_BeginUpload_FullMethodName       = "/heirvault.service.HeirVaultService/BeginUpload"
	HeirVaultService_UploadChunk_FullMethodName       = "/heirvault.service.HeirVaultService/UploadChunk"
	HeirVaultService_FinishUpload_FullMethodName      = "/heirvault.service.HeirVaultService/FinishUpload"
	HeirVaultService_AbortUpload_FullMethodName       = "/heirvault.service.HeirVaultService/AbortUpload"
	HeirVaultService_ListContent_FullMethodName       = "/heirvault.service.HeirVaultService/ListContent"
	HeirVaultService_DownloadContent_FullMethodName   = "/heirvault.service.HeirVaultService/DownloadContent"
	HeirVaultService_DeleteContent_FullMethodName     = "/heirvault.service.HeirVaultService/DeleteContent"
	HeirVaultService_SetSetting_FullMethodName        = "/heirvault.service.HeirVaultService/SetSetting"
	HeirVaultService_RunMaintenance_FullMethodName    = "/heirvault.service.HeirVaultService/RunMaintenance"
)

// HeirVaultServiceClient is the client API for HeirVaultService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type HeirVaultServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	// vault lifecycle
	CreateVault(ctx context.Context, in *CreateVaultRequest, opts ...grpc.CallOption) (*VaultResponse, error)
	GetVault(ctx context.Context, in *GetVaultRequest, opts ...grpc.CallOption) (*VaultResponse, error)
	FinalizeSetup(ctx context.Context, in *FinalizeSetupRequest, opts ...grpc.CallOption) (*VaultResponse, error)
	ApproveUnlock(ctx context.Context, in *ApproveUnlockRequest, opts ...grpc.CallOption) (*ApproveUnlockResponse, error)
	TriggerUnlock(ctx context.Context, in *TriggerUnlockRequest, opts ...grpc.CallOption) (*VaultResponse, error)
	DeleteVault(ctx context.Context, in *DeleteVaultRequest, opts ...grpc.CallOption) (*VaultResponse, error)
	// invites
	GenerateInvite(ctx context.Context, in *GenerateInviteRequest, opts ...grpc.CallOption) (*GenerateInviteResponse, error)
	ClaimInvite(ctx context.Context, in *ClaimInviteRequest, opts ...grpc.CallOption) (*ClaimInviteResponse, error)
	RevokeInvite(ctx context.Context, in *RevokeInviteRequest, opts ...grpc.CallOption) (*RevokeInviteResponse, error)
	// payments
	InitializePayment(ctx context.Context, in *InitializePaymentRequest, opts ...grpc.CallOption) (*PaymentResponse, error)
	VerifyPayment(ctx context.Context, in *VerifyPaymentRequest, opts ...grpc.CallOption) (*PaymentResponse, error)
	ClosePayment(ctx context.Context, in *ClosePaymentRequest, opts ...grpc.CallOption) (*PaymentResponse, error)
	// uploads
	BeginUpload(ctx context.Context, in *BeginUploadRequest, opts ...grpc.CallOption) (*BeginUploadResponse, error)
	UploadChunk(ctx context.Context, in *UploadChunkRequest, opts ...grpc.CallOption) (*UploadChunkResponse, error)
	FinishUpload(ctx context.Context, in *FinishUploadRequest, opts ...grpc.CallOption) (*ContentItemResponse, error)
	AbortUpload(ctx context.Context, in *AbortUploadRequest, opts ...grpc.CallOption) (*AbortUploadResponse, error)
	// content
	ListContent(ctx context.Context, in *ListContentRequest, opts ...grpc.CallOption) (*ListContentResponse, error)
	DownloadContent(ctx context.Context, in *DownloadContentRequest, opts ...grpc.CallOption) (*DownloadContentResponse, error)
	DeleteContent(ctx context.Context, in *DeleteContentRequest, opts ...grpc.CallOption) (*DeleteContentResponse, error)
	// administration
	SetSetting(ctx context.Context, in *SetSettingRequest, opts ...grpc.CallOption) (*SetSettingResponse, error)
	RunMaintenance(ctx context.Context, in *RunMaintenanceRequest, opts ...grpc.CallOption) (*RunMaintenanceResponse, error)
}

type heirVaultServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewHeirVaultServiceClient(cc grpc.ClientConnInterface) HeirVaultServiceClient {
	return &heirVaultServiceClient{cc}
}

func (c *heirVaultServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PingResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_Ping_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) CreateVault(ctx context.Context, in *CreateVaultRequest, opts ...grpc.CallOption) (*VaultResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VaultResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_CreateVault_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) GetVault(ctx context.Context, in *GetVaultRequest, opts ...grpc.CallOption) (*VaultResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VaultResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_GetVault_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) FinalizeSetup(ctx context.Context, in *FinalizeSetupRequest, opts ...grpc.CallOption) (*VaultResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VaultResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_FinalizeSetup_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) ApproveUnlock(ctx context.Context, in *ApproveUnlockRequest, opts ...grpc.CallOption) (*ApproveUnlockResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApproveUnlockResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_ApproveUnlock_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) TriggerUnlock(ctx context.Context, in *TriggerUnlockRequest, opts ...grpc.CallOption) (*VaultResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VaultResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_TriggerUnlock_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) DeleteVault(ctx context.Context, in *DeleteVaultRequest, opts ...grpc.CallOption) (*VaultResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VaultResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_DeleteVault_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) GenerateInvite(ctx context.Context, in *GenerateInviteRequest, opts ...grpc.CallOption) (*GenerateInviteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateInviteResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_GenerateInvite_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) ClaimInvite(ctx context.Context, in *ClaimInviteRequest, opts ...grpc.CallOption) (*ClaimInviteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClaimInviteResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_ClaimInvite_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) RevokeInvite(ctx context.Context, in *RevokeInviteRequest, opts ...grpc.CallOption) (*RevokeInviteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RevokeInviteResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_RevokeInvite_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) InitializePayment(ctx context.Context, in *InitializePaymentRequest, opts ...grpc.CallOption) (*PaymentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PaymentResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_InitializePayment_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) VerifyPayment(ctx context.Context, in *VerifyPaymentRequest, opts ...grpc.CallOption) (*PaymentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PaymentResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_VerifyPayment_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) ClosePayment(ctx context.Context, in *ClosePaymentRequest, opts ...grpc.CallOption) (*PaymentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PaymentResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_ClosePayment_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) BeginUpload(ctx context.Context, in *BeginUploadRequest, opts ...grpc.CallOption) (*BeginUploadResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BeginUploadResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_BeginUpload_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) UploadChunk(ctx context.Context, in *UploadChunkRequest, opts ...grpc.CallOption) (*UploadChunkResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadChunkResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_UploadChunk_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) FinishUpload(ctx context.Context, in *FinishUploadRequest, opts ...grpc.CallOption) (*ContentItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ContentItemResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_FinishUpload_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) AbortUpload(ctx context.Context, in *AbortUploadRequest, opts ...grpc.CallOption) (*AbortUploadResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AbortUploadResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_AbortUpload_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) ListContent(ctx context.Context, in *ListContentRequest, opts ...grpc.CallOption) (*ListContentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListContentResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_ListContent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) DownloadContent(ctx context.Context, in *DownloadContentRequest, opts ...grpc.CallOption) (*DownloadContentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DownloadContentResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_DownloadContent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) DeleteContent(ctx context.Context, in *DeleteContentRequest, opts ...grpc.CallOption) (*DeleteContentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteContentResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_DeleteContent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) SetSetting(ctx context.Context, in *SetSettingRequest, opts ...grpc.CallOption) (*SetSettingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetSettingResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_SetSetting_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *heirVaultServiceClient) RunMaintenance(ctx context.Context, in *RunMaintenanceRequest, opts ...grpc.CallOption) (*RunMaintenanceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RunMaintenanceResponse)
	err := c.cc.Invoke(ctx, HeirVaultService_RunMaintenance_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// HeirVaultServiceServer is the server API for HeirVaultService service.
// All implementations must embed UnimplementedHeirVaultServiceServer
// for forward compatibility.
type HeirVaultServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	// vault lifecycle
	CreateVault(context.Context, *CreateVaultRequest) (*VaultResponse, error)
	GetVault(context.Context, *GetVaultRequest) (*VaultResponse, error)
	FinalizeSetup(context.Context, *FinalizeSetupRequest) (*VaultResponse, error)
	ApproveUnlock(context.Context, *ApproveUnlockRequest) (*ApproveUnlockResponse, error)
	TriggerUnlock(context.Context, *TriggerUnlockRequest) (*VaultResponse, error)
	DeleteVault(context.Context, *DeleteVaultRequest) (*VaultResponse, error)
	// invites
	GenerateInvite(context.Context, *GenerateInviteRequest) (*GenerateInviteResponse, error)
	ClaimInvite(context.Context, *ClaimInviteRequest) (*ClaimInviteResponse, error)
	RevokeInvite(context.Context, *RevokeInviteRequest) (*RevokeInviteResponse, error)
	// payments
	InitializePayment(context.Context, *InitializePaymentRequest) (*PaymentResponse, error)
	VerifyPayment(context.Context, *VerifyPaymentRequest) (*PaymentResponse, error)
	ClosePayment(context.Context, *ClosePaymentRequest) (*PaymentResponse, error)
	// uploads
	BeginUpload(context.Context, *BeginUploadRequest) (*BeginUploadResponse, error)
	UploadChunk(context.Context, *UploadChunkRequest) (*UploadChunkResponse, error)
	FinishUpload(context.Context, *FinishUploadRequest) (*ContentItemResponse, error)
	AbortUpload(context.Context, *AbortUploadRequest) (*AbortUploadResponse, error)
	// content
	ListContent(context.Context, *ListContentRequest) (*ListContentResponse, error)
	DownloadContent(context.Context, *DownloadContentRequest) (*DownloadContentResponse, error)
	DeleteContent(context.Context, *DeleteContentRequest) (*DeleteContentResponse, error)
	// administration
	SetSetting(context.Context, *SetSettingRequest) (*SetSettingResponse, error)
	RunMaintenance(context.Context, *RunMaintenanceRequest) (*RunMaintenanceResponse, error)
	mustEmbedUnimplementedHeirVaultServiceServer()
}

// UnimplementedHeirVaultServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedHeirVaultServiceServer struct{}

func (UnimplementedHeirVaultServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedHeirVaultServiceServer) CreateVault(context.Context, *CreateVaultRequest) (*VaultResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateVault not implemented")
}
func (UnimplementedHeirVaultServiceServer) GetVault(context.Context, *GetVaultRequest) (*VaultResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetVault not implemented")
}
func (UnimplementedHeirVaultServiceServer) FinalizeSetup(context.Context, *FinalizeSetupRequest) (*VaultResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FinalizeSetup not implemented")
}
func (UnimplementedHeirVaultServiceServer) ApproveUnlock(context.Context, *ApproveUnlockRequest) (*ApproveUnlockResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApproveUnlock not implemented")
}
func (UnimplementedHeirVaultServiceServer) TriggerUnlock(context.Context, *TriggerUnlockRequest) (*VaultResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TriggerUnlock not implemented")
}
func (UnimplementedHeirVaultServiceServer) DeleteVault(context.Context, *DeleteVaultRequest) (*VaultResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteVault not implemented")
}
func (UnimplementedHeirVaultServiceServer) GenerateInvite(context.Context, *GenerateInviteRequest) (*GenerateInviteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateInvite not implemented")
}
func (UnimplementedHeirVaultServiceServer) ClaimInvite(context.Context, *ClaimInviteRequest) (*ClaimInviteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClaimInvite not implemented")
}
func (UnimplementedHeirVaultServiceServer) RevokeInvite(context.Context, *RevokeInviteRequest) (*RevokeInviteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RevokeInvite not implemented")
}
func (UnimplementedHeirVaultServiceServer) InitializePayment(context.Context, *InitializePaymentRequest) (*PaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InitializePayment not implemented")
}
func (UnimplementedHeirVaultServiceServer) VerifyPayment(context.Context, *VerifyPaymentRequest) (*PaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method VerifyPayment not implemented")
}
func (UnimplementedHeirVaultServiceServer) ClosePayment(context.Context, *ClosePaymentRequest) (*PaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClosePayment not implemented")
}
func (UnimplementedHeirVaultServiceServer) BeginUpload(context.Context, *BeginUploadRequest) (*BeginUploadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BeginUpload not implemented")
}
func (UnimplementedHeirVaultServiceServer) UploadChunk(context.Context, *UploadChunkRequest) (*UploadChunkResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UploadChunk not implemented")
}
func (UnimplementedHeirVaultServiceServer) FinishUpload(context.Context, *FinishUploadRequest) (*ContentItemResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FinishUpload not implemented")
}
func (UnimplementedHeirVaultServiceServer) AbortUpload(context.Context, *AbortUploadRequest) (*AbortUploadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AbortUpload not implemented")
}
func (UnimplementedHeirVaultServiceServer) ListContent(context.Context, *ListContentRequest) (*ListContentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListContent not implemented")
}
func (UnimplementedHeirVaultServiceServer) DownloadContent(context.Context, *DownloadContentRequest) (*DownloadContentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DownloadContent not implemented")
}
func (UnimplementedHeirVaultServiceServer) DeleteContent(context.Context, *DeleteContentRequest) (*DeleteContentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteContent not implemented")
}
func (UnimplementedHeirVaultServiceServer) SetSetting(context.Context, *SetSettingRequest) (*SetSettingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetSetting not implemented")
}
func (UnimplementedHeirVaultServiceServer) RunMaintenance(context.Context, *RunMaintenanceRequest) (*RunMaintenanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunMaintenance not implemented")
}
func (UnimplementedHeirVaultServiceServer) mustEmbedUnimplementedHeirVaultServiceServer() {}
func (UnimplementedHeirVaultServiceServer) testEmbeddedByValue()                          {}

// UnsafeHeirVaultServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to HeirVaultServiceServer will
// result in compilation errors.
type UnsafeHeirVaultServiceServer interface {
	mustEmbedUnimplementedHeirVaultServiceServer()
}

func RegisterHeirVaultServiceServer(s grpc.ServiceRegistrar, srv HeirVaultServiceServer) {
	// If the following call pancis, it indicates UnimplementedHeirVaultServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&HeirVaultService_ServiceDesc, srv)
}

func _HeirVaultService_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_Ping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_CreateVault_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateVaultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).CreateVault(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_CreateVault_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).CreateVault(ctx, req.(*CreateVaultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_GetVault_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetVaultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).GetVault(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_GetVault_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).GetVault(ctx, req.(*GetVaultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_FinalizeSetup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FinalizeSetupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).FinalizeSetup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_FinalizeSetup_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).FinalizeSetup(ctx, req.(*FinalizeSetupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_ApproveUnlock_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApproveUnlockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).ApproveUnlock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_ApproveUnlock_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).ApproveUnlock(ctx, req.(*ApproveUnlockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_TriggerUnlock_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TriggerUnlockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).TriggerUnlock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_TriggerUnlock_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).TriggerUnlock(ctx, req.(*TriggerUnlockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_DeleteVault_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteVaultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).DeleteVault(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_DeleteVault_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).DeleteVault(ctx, req.(*DeleteVaultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_GenerateInvite_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateInviteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).GenerateInvite(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_GenerateInvite_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).GenerateInvite(ctx, req.(*GenerateInviteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_ClaimInvite_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClaimInviteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).ClaimInvite(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_ClaimInvite_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).ClaimInvite(ctx, req.(*ClaimInviteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_RevokeInvite_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RevokeInviteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).RevokeInvite(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_RevokeInvite_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).RevokeInvite(ctx, req.(*RevokeInviteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_InitializePayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InitializePaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).InitializePayment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_InitializePayment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).InitializePayment(ctx, req.(*InitializePaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_VerifyPayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VerifyPaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).VerifyPayment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_VerifyPayment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).VerifyPayment(ctx, req.(*VerifyPaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_ClosePayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClosePaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).ClosePayment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_ClosePayment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).ClosePayment(ctx, req.(*ClosePaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_BeginUpload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BeginUploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).BeginUpload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_BeginUpload_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).BeginUpload(ctx, req.(*BeginUploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_UploadChunk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadChunkRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).UploadChunk(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_UploadChunk_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).UploadChunk(ctx, req.(*UploadChunkRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_FinishUpload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FinishUploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).FinishUpload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_FinishUpload_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).FinishUpload(ctx, req.(*FinishUploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_AbortUpload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AbortUploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).AbortUpload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_AbortUpload_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).AbortUpload(ctx, req.(*AbortUploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_ListContent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListContentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).ListContent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_ListContent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).ListContent(ctx, req.(*ListContentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_DownloadContent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DownloadContentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).DownloadContent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_DownloadContent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).DownloadContent(ctx, req.(*DownloadContentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_DeleteContent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteContentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).DeleteContent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_DeleteContent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).DeleteContent(ctx, req.(*DeleteContentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_SetSetting_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetSettingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).SetSetting(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_SetSetting_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).SetSetting(ctx, req.(*SetSettingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HeirVaultService_RunMaintenance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunMaintenanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeirVaultServiceServer).RunMaintenance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HeirVaultService_RunMaintenance_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeirVaultServiceServer).RunMaintenance(ctx, req.(*RunMaintenanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// HeirVaultService_ServiceDesc is the grpc.ServiceDesc for HeirVaultService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var HeirVaultService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "heirvault.service.HeirVaultService",
	HandlerType: (*HeirVaultServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Ping",
			Handler:    _HeirVaultService_Ping_Handler,
		},
		{
			MethodName: "CreateVault",
			Handler:    _HeirVaultService_CreateVault_Handler,
		},
		{
			MethodName: "GetVault",
			Handler:    _HeirVaultService_GetVault_Handler,
		},
		{
			MethodName: "FinalizeSetup",
			Handler:    _HeirVaultService_FinalizeSetup_Handler,
		},
		{
			MethodName: "ApproveUnlock",
			Handler:    _HeirVaultService_ApproveUnlock_Handler,
		},
		{
			MethodName: "TriggerUnlock",
			Handler:    _HeirVaultService_TriggerUnlock_Handler,
		},
		{
			MethodName: "DeleteVault",
			Handler:    _HeirVaultService_DeleteVault_Handler,
		},
		{
			MethodName: "GenerateInvite",
			Handler:    _HeirVaultService_GenerateInvite_Handler,
		},
		{
			MethodName: "ClaimInvite",
			Handler:    _HeirVaultService_ClaimInvite_Handler,
		},
		{
			MethodName: "RevokeInvite",
			Handler:    _HeirVaultService_RevokeInvite_Handler,
		},
		{
			MethodName: "InitializePayment",
			Handler:    _HeirVaultService_InitializePayment_Handler,
		},
		{
			MethodName: "VerifyPayment",
			Handler:    _HeirVaultService_VerifyPayment_Handler,
		},
		{
			MethodName: "ClosePayment",
			Handler:    _HeirVaultService_ClosePayment_Handler,
		},
		{
			MethodName: "BeginUpload",
			Handler:    _HeirVaultService_BeginUpload_Handler,
		},
		{
			MethodName: "UploadChunk",
			Handler:    _HeirVaultService_UploadChunk_Handler,
		},
		{
			MethodName: "FinishUpload",
			Handler:    _HeirVaultService_FinishUpload_Handler,
		},
		{
			MethodName: "AbortUpload",
			Handler:    _HeirVaultService_AbortUpload_Handler,
		},
		{
			MethodName: "ListContent",
			Handler:    _HeirVaultService_ListContent_Handler,
		},
		{
			MethodName: "DownloadContent",
			Handler:    _HeirVaultService_DownloadContent_Handler,
		},
		{
			MethodName: "DeleteContent",
			Handler:    _HeirVaultService_DeleteContent_Handler,
		},
		{
			MethodName: "SetSetting",
			Handler:    _HeirVaultService_SetSetting_Handler,
		},
		{
			MethodName: "RunMaintenance",
			Handler:    _HeirVaultService_RunMaintenance_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "heirvault.proto",
}
