// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.9
// 	protoc        (unknown)
// source: heirvault.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type PingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PingRequest) Reset() {
	*x = PingRequest{}
	mi := &file_heirvault_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingRequest) ProtoMessage() {}

func (x *PingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PingRequest.ProtoReflect.Descriptor instead.
func (*PingRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{0}
}

type PingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PingResponse) Reset() {
	*x = PingResponse{}
	mi := &file_heirvault_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingResponse) ProtoMessage() {}

func (x *PingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PingResponse.ProtoReflect.Descriptor instead.
func (*PingResponse) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{1}
}

func (x *PingResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type UnlockConditions struct {
	state                    protoimpl.MessageState `protogen:"open.v1"`
	UnlockAtUnix             int64                  `protobuf:"varint,1,opt,name=unlock_at_unix,json=unlockAtUnix,proto3" json:"unlock_at_unix,omitempty"`
	InactivitySeconds        int64                  `protobuf:"varint,2,opt,name=inactivity_seconds,json=inactivitySeconds,proto3" json:"inactivity_seconds,omitempty"`
	RequiredHeirApprovals    int32                  `protobuf:"varint,3,opt,name=required_heir_approvals,json=requiredHeirApprovals,proto3" json:"required_heir_approvals,omitempty"`
	RequiredWitnessApprovals int32                  `protobuf:"varint,4,opt,name=required_witness_approvals,json=requiredWitnessApprovals,proto3" json:"required_witness_approvals,omitempty"`
	unknownFields            protoimpl.UnknownFields
	sizeCache                protoimpl.SizeCache
}

func (x *UnlockConditions) Reset() {
	*x = UnlockConditions{}
	mi := &file_heirvault_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnlockConditions) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnlockConditions) ProtoMessage() {}

func (x *UnlockConditions) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnlockConditions.ProtoReflect.Descriptor instead.
func (*UnlockConditions) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{2}
}

func (x *UnlockConditions) GetUnlockAtUnix() int64 {
	if x != nil {
		return x.UnlockAtUnix
	}
	return 0
}

func (x *UnlockConditions) GetInactivitySeconds() int64 {
	if x != nil {
		return x.InactivitySeconds
	}
	return 0
}

func (x *UnlockConditions) GetRequiredHeirApprovals() int32 {
	if x != nil {
		return x.RequiredHeirApprovals
	}
	return 0
}

func (x *UnlockConditions) GetRequiredWitnessApprovals() int32 {
	if x != nil {
		return x.RequiredWitnessApprovals
	}
	return 0
}

type Vault struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId           string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Name              string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Description       string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	Status            string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	Plan              string                 `protobuf:"bytes,6,opt,name=plan,proto3" json:"plan,omitempty"`
	StorageQuotaBytes int64                  `protobuf:"varint,7,opt,name=storage_quota_bytes,json=storageQuotaBytes,proto3" json:"storage_quota_bytes,omitempty"`
	Conditions        *UnlockConditions      `protobuf:"bytes,8,opt,name=conditions,proto3" json:"conditions,omitempty"`
	CreatedAtUnix     int64                  `protobuf:"varint,9,opt,name=created_at_unix,json=createdAtUnix,proto3" json:"created_at_unix,omitempty"`
	ExpiresAtUnix     int64                  `protobuf:"varint,10,opt,name=expires_at_unix,json=expiresAtUnix,proto3" json:"expires_at_unix,omitempty"`
	UnlockedAtUnix    int64                  `protobuf:"varint,11,opt,name=unlocked_at_unix,json=unlockedAtUnix,proto3" json:"unlocked_at_unix,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Vault) Reset() {
	*x = Vault{}
	mi := &file_heirvault_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Vault) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Vault) ProtoMessage() {}

func (x *Vault) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Vault.ProtoReflect.Descriptor instead.
func (*Vault) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{3}
}

func (x *Vault) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Vault) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Vault) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Vault) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Vault) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Vault) GetPlan() string {
	if x != nil {
		return x.Plan
	}
	return ""
}

func (x *Vault) GetStorageQuotaBytes() int64 {
	if x != nil {
		return x.StorageQuotaBytes
	}
	return 0
}

func (x *Vault) GetConditions() *UnlockConditions {
	if x != nil {
		return x.Conditions
	}
	return nil
}

func (x *Vault) GetCreatedAtUnix() int64 {
	if x != nil {
		return x.CreatedAtUnix
	}
	return 0
}

func (x *Vault) GetExpiresAtUnix() int64 {
	if x != nil {
		return x.ExpiresAtUnix
	}
	return 0
}

func (x *Vault) GetUnlockedAtUnix() int64 {
	if x != nil {
		return x.UnlockedAtUnix
	}
	return 0
}

type CreateVaultRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Plan          string                 `protobuf:"bytes,3,opt,name=plan,proto3" json:"plan,omitempty"`
	Conditions    *UnlockConditions      `protobuf:"bytes,4,opt,name=conditions,proto3" json:"conditions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateVaultRequest) Reset() {
	*x = CreateVaultRequest{}
	mi := &file_heirvault_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateVaultRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateVaultRequest) ProtoMessage() {}

func (x *CreateVaultRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateVaultRequest.ProtoReflect.Descriptor instead.
func (*CreateVaultRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{4}
}

func (x *CreateVaultRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateVaultRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateVaultRequest) GetPlan() string {
	if x != nil {
		return x.Plan
	}
	return ""
}

func (x *CreateVaultRequest) GetConditions() *UnlockConditions {
	if x != nil {
		return x.Conditions
	}
	return nil
}

type GetVaultRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VaultId       string                 `protobuf:"bytes,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVaultRequest) Reset() {
	*x = GetVaultRequest{}
	mi := &file_heirvault_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVaultRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVaultRequest) ProtoMessage() {}

func (x *GetVaultRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVaultRequest.ProtoReflect.Descriptor instead.
func (*GetVaultRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{5}
}

func (x *GetVaultRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

type FinalizeSetupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VaultId       string                 `protobuf:"bytes,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FinalizeSetupRequest) Reset() {
	*x = FinalizeSetupRequest{}
	mi := &file_heirvault_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinalizeSetupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinalizeSetupRequest) ProtoMessage() {}

func (x *FinalizeSetupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FinalizeSetupRequest.ProtoReflect.Descriptor instead.
func (*FinalizeSetupRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{6}
}

func (x *FinalizeSetupRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

type VaultResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vault         *Vault                 `protobuf:"bytes,1,opt,name=vault,proto3" json:"vault,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VaultResponse) Reset() {
	*x = VaultResponse{}
	mi := &file_heirvault_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VaultResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VaultResponse) ProtoMessage() {}

func (x *VaultResponse) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VaultResponse.ProtoReflect.Descriptor instead.
func (*VaultResponse) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{7}
}

func (x *VaultResponse) GetVault() *Vault {
	if x != nil {
		return x.Vault
	}
	return nil
}

type ApproveUnlockRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VaultId       string                 `protobuf:"bytes,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveUnlockRequest) Reset() {
	*x = ApproveUnlockRequest{}
	mi := &file_heirvault_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveUnlockRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveUnlockRequest) ProtoMessage() {}

func (x *ApproveUnlockRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveUnlockRequest.ProtoReflect.Descriptor instead.
func (*ApproveUnlockRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{8}
}

func (x *ApproveUnlockRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

type ApproveUnlockResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	HeirApprovals    int32                  `protobuf:"varint,1,opt,name=heir_approvals,json=heirApprovals,proto3" json:"heir_approvals,omitempty"`
	WitnessApprovals int32                  `protobuf:"varint,2,opt,name=witness_approvals,json=witnessApprovals,proto3" json:"witness_approvals,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ApproveUnlockResponse) Reset() {
	*x = ApproveUnlockResponse{}
	mi := &file_heirvault_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveUnlockResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveUnlockResponse) ProtoMessage() {}

func (x *ApproveUnlockResponse) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveUnlockResponse.ProtoReflect.Descriptor instead.
func (*ApproveUnlockResponse) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{9}
}

func (x *ApproveUnlockResponse) GetHeirApprovals() int32 {
	if x != nil {
		return x.HeirApprovals
	}
	return 0
}

func (x *ApproveUnlockResponse) GetWitnessApprovals() int32 {
	if x != nil {
		return x.WitnessApprovals
	}
	return 0
}

type TriggerUnlockRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VaultId       string                 `protobuf:"bytes,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TriggerUnlockRequest) Reset() {
	*x = TriggerUnlockRequest{}
	mi := &file_heirvault_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TriggerUnlockRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TriggerUnlockRequest) ProtoMessage() {}

func (x *TriggerUnlockRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TriggerUnlockRequest.ProtoReflect.Descriptor instead.
func (*TriggerUnlockRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{10}
}

func (x *TriggerUnlockRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

type DeleteVaultRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VaultId       string                 `protobuf:"bytes,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteVaultRequest) Reset() {
	*x = DeleteVaultRequest{}
	mi := &file_heirvault_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteVaultRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteVaultRequest) ProtoMessage() {}

func (x *DeleteVaultRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteVaultRequest.ProtoReflect.Descriptor instead.
func (*DeleteVaultRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{11}
}

func (x *DeleteVaultRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

type GenerateInviteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VaultId       string                 `protobuf:"bytes,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	Role          string                 `protobuf:"bytes,2,opt,name=role,proto3" json:"role,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateInviteRequest) Reset() {
	*x = GenerateInviteRequest{}
	mi := &file_heirvault_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateInviteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateInviteRequest) ProtoMessage() {}

func (x *GenerateInviteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateInviteRequest.ProtoReflect.Descriptor instead.
func (*GenerateInviteRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{12}
}

func (x *GenerateInviteRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

func (x *GenerateInviteRequest) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

type GenerateInviteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	InviteId      string                 `protobuf:"bytes,1,opt,name=invite_id,json=inviteId,proto3" json:"invite_id,omitempty"`
	ClaimToken    string                 `protobuf:"bytes,2,opt,name=claim_token,json=claimToken,proto3" json:"claim_token,omitempty"`
	ShareIndex    int32                  `protobuf:"varint,3,opt,name=share_index,json=shareIndex,proto3" json:"share_index,omitempty"`
	ExpiresAtUnix int64                  `protobuf:"varint,4,opt,name=expires_at_unix,json=expiresAtUnix,proto3" json:"expires_at_unix,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateInviteResponse) Reset() {
	*x = GenerateInviteResponse{}
	mi := &file_heirvault_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateInviteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateInviteResponse) ProtoMessage() {}

func (x *GenerateInviteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateInviteResponse.ProtoReflect.Descriptor instead.
func (*GenerateInviteResponse) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{13}
}

func (x *GenerateInviteResponse) GetInviteId() string {
	if x != nil {
		return x.InviteId
	}
	return ""
}

func (x *GenerateInviteResponse) GetClaimToken() string {
	if x != nil {
		return x.ClaimToken
	}
	return ""
}

func (x *GenerateInviteResponse) GetShareIndex() int32 {
	if x != nil {
		return x.ShareIndex
	}
	return 0
}

func (x *GenerateInviteResponse) GetExpiresAtUnix() int64 {
	if x != nil {
		return x.ExpiresAtUnix
	}
	return 0
}

type ClaimInviteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClaimToken    string                 `protobuf:"bytes,1,opt,name=claim_token,json=claimToken,proto3" json:"claim_token,omitempty"`
	DisplayName   string                 `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClaimInviteRequest) Reset() {
	*x = ClaimInviteRequest{}
	mi := &file_heirvault_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClaimInviteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClaimInviteRequest) ProtoMessage() {}

func (x *ClaimInviteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClaimInviteRequest.ProtoReflect.Descriptor instead.
func (*ClaimInviteRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{14}
}

func (x *ClaimInviteRequest) GetClaimToken() string {
	if x != nil {
		return x.ClaimToken
	}
	return ""
}

func (x *ClaimInviteRequest) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

type ClaimInviteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VaultId       string                 `protobuf:"bytes,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	MemberId      string                 `protobuf:"bytes,2,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	Role          string                 `protobuf:"bytes,3,opt,name=role,proto3" json:"role,omitempty"`
	ShareIndex    int32                  `protobuf:"varint,4,opt,name=share_index,json=shareIndex,proto3" json:"share_index,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClaimInviteResponse) Reset() {
	*x = ClaimInviteResponse{}
	mi := &file_heirvault_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClaimInviteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClaimInviteResponse) ProtoMessage() {}

func (x *ClaimInviteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClaimInviteResponse.ProtoReflect.Descriptor instead.
func (*ClaimInviteResponse) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{15}
}

func (x *ClaimInviteResponse) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

func (x *ClaimInviteResponse) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

func (x *ClaimInviteResponse) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *ClaimInviteResponse) GetShareIndex() int32 {
	if x != nil {
		return x.ShareIndex
	}
	return 0
}

type RevokeInviteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VaultId       string                 `protobuf:"bytes,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	InviteId      string                 `protobuf:"bytes,2,opt,name=invite_id,json=inviteId,proto3" json:"invite_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RevokeInviteRequest) Reset() {
	*x = RevokeInviteRequest{}
	mi := &file_heirvault_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RevokeInviteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RevokeInviteRequest) ProtoMessage() {}

func (x *RevokeInviteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RevokeInviteRequest.ProtoReflect.Descriptor instead.
func (*RevokeInviteRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{16}
}

func (x *RevokeInviteRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

func (x *RevokeInviteRequest) GetInviteId() string {
	if x != nil {
		return x.InviteId
	}
	return ""
}

type RevokeInviteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RevokeInviteResponse) Reset() {
	*x = RevokeInviteResponse{}
	mi := &file_heirvault_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RevokeInviteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RevokeInviteResponse) ProtoMessage() {}

func (x *RevokeInviteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RevokeInviteResponse.ProtoReflect.Descriptor instead.
func (*RevokeInviteResponse) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{17}
}

type InitializePaymentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VaultId       string                 `protobuf:"bytes,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	Purpose       string                 `protobuf:"bytes,2,opt,name=purpose,proto3" json:"purpose,omitempty"`
	Plan          string                 `protobuf:"bytes,3,opt,name=plan,proto3" json:"plan,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InitializePaymentRequest) Reset() {
	*x = InitializePaymentRequest{}
	mi := &file_heirvault_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InitializePaymentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InitializePaymentRequest) ProtoMessage() {}

func (x *InitializePaymentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InitializePaymentRequest.ProtoReflect.Descriptor instead.
func (*InitializePaymentRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{18}
}

func (x *InitializePaymentRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

func (x *InitializePaymentRequest) GetPurpose() string {
	if x != nil {
		return x.Purpose
	}
	return ""
}

func (x *InitializePaymentRequest) GetPlan() string {
	if x != nil {
		return x.Plan
	}
	return ""
}

type VerifyPaymentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	BlockIndex    uint64                 `protobuf:"varint,2,opt,name=block_index,json=blockIndex,proto3" json:"block_index,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyPaymentRequest) Reset() {
	*x = VerifyPaymentRequest{}
	mi := &file_heirvault_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyPaymentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyPaymentRequest) ProtoMessage() {}

func (x *VerifyPaymentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyPaymentRequest.ProtoReflect.Descriptor instead.
func (*VerifyPaymentRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{19}
}

func (x *VerifyPaymentRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *VerifyPaymentRequest) GetBlockIndex() uint64 {
	if x != nil {
		return x.BlockIndex
	}
	return 0
}

type ClosePaymentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClosePaymentRequest) Reset() {
	*x = ClosePaymentRequest{}
	mi := &file_heirvault_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClosePaymentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClosePaymentRequest) ProtoMessage() {}

func (x *ClosePaymentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClosePaymentRequest.ProtoReflect.Descriptor instead.
func (*ClosePaymentRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{20}
}

func (x *ClosePaymentRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type PaymentResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	SessionId      string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	State          string                 `protobuf:"bytes,2,opt,name=state,proto3" json:"state,omitempty"`
	Account        string                 `protobuf:"bytes,3,opt,name=account,proto3" json:"account,omitempty"`
	ExpectedAmount int64                  `protobuf:"varint,4,opt,name=expected_amount,json=expectedAmount,proto3" json:"expected_amount,omitempty"`
	ExpiresAtUnix  int64                  `protobuf:"varint,5,opt,name=expires_at_unix,json=expiresAtUnix,proto3" json:"expires_at_unix,omitempty"`
	LedgerRef      string                 `protobuf:"bytes,6,opt,name=ledger_ref,json=ledgerRef,proto3" json:"ledger_ref,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *PaymentResponse) Reset() {
	*x = PaymentResponse{}
	mi := &file_heirvault_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PaymentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PaymentResponse) ProtoMessage() {}

func (x *PaymentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PaymentResponse.ProtoReflect.Descriptor instead.
func (*PaymentResponse) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{21}
}

func (x *PaymentResponse) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *PaymentResponse) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *PaymentResponse) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

func (x *PaymentResponse) GetExpectedAmount() int64 {
	if x != nil {
		return x.ExpectedAmount
	}
	return 0
}

func (x *PaymentResponse) GetExpiresAtUnix() int64 {
	if x != nil {
		return x.ExpiresAtUnix
	}
	return 0
}

func (x *PaymentResponse) GetLedgerRef() string {
	if x != nil {
		return x.LedgerRef
	}
	return ""
}

type BeginUploadRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	VaultId        string                 `protobuf:"bytes,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	ContentType    string                 `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Title          string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	FileName       string                 `protobuf:"bytes,4,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	MimeType       string                 `protobuf:"bytes,5,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	DeclaredSize   int64                  `protobuf:"varint,6,opt,name=declared_size,json=declaredSize,proto3" json:"declared_size,omitempty"`
	ExpectedChunks int32                  `protobuf:"varint,7,opt,name=expected_chunks,json=expectedChunks,proto3" json:"expected_chunks,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *BeginUploadRequest) Reset() {
	*x = BeginUploadRequest{}
	mi := &file_heirvault_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BeginUploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BeginUploadRequest) ProtoMessage() {}

func (x *BeginUploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BeginUploadRequest.ProtoReflect.Descriptor instead.
func (*BeginUploadRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{22}
}

func (x *BeginUploadRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

func (x *BeginUploadRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *BeginUploadRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *BeginUploadRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *BeginUploadRequest) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *BeginUploadRequest) GetDeclaredSize() int64 {
	if x != nil {
		return x.DeclaredSize
	}
	return 0
}

func (x *BeginUploadRequest) GetExpectedChunks() int32 {
	if x != nil {
		return x.ExpectedChunks
	}
	return 0
}

type BeginUploadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UploadId      string                 `protobuf:"bytes,1,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BeginUploadResponse) Reset() {
	*x = BeginUploadResponse{}
	mi := &file_heirvault_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BeginUploadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BeginUploadResponse) ProtoMessage() {}

func (x *BeginUploadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BeginUploadResponse.ProtoReflect.Descriptor instead.
func (*BeginUploadResponse) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{23}
}

func (x *BeginUploadResponse) GetUploadId() string {
	if x != nil {
		return x.UploadId
	}
	return ""
}

type UploadChunkRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UploadId      string                 `protobuf:"bytes,1,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	Seq           int32                  `protobuf:"varint,2,opt,name=seq,proto3" json:"seq,omitempty"`
	Data          []byte                 `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadChunkRequest) Reset() {
	*x = UploadChunkRequest{}
	mi := &file_heirvault_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadChunkRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadChunkRequest) ProtoMessage() {}

func (x *UploadChunkRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadChunkRequest.ProtoReflect.Descriptor instead.
func (*UploadChunkRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{24}
}

func (x *UploadChunkRequest) GetUploadId() string {
	if x != nil {
		return x.UploadId
	}
	return ""
}

func (x *UploadChunkRequest) GetSeq() int32 {
	if x != nil {
		return x.Seq
	}
	return 0
}

func (x *UploadChunkRequest) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

type UploadChunkResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ReceivedChunks int32                  `protobuf:"varint,1,opt,name=received_chunks,json=receivedChunks,proto3" json:"received_chunks,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UploadChunkResponse) Reset() {
	*x = UploadChunkResponse{}
	mi := &file_heirvault_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadChunkResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadChunkResponse) ProtoMessage() {}

func (x *UploadChunkResponse) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadChunkResponse.ProtoReflect.Descriptor instead.
func (*UploadChunkResponse) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{25}
}

func (x *UploadChunkResponse) GetReceivedChunks() int32 {
	if x != nil {
		return x.ReceivedChunks
	}
	return 0
}

type FinishUploadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UploadId      string                 `protobuf:"bytes,1,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	Checksum      string                 `protobuf:"bytes,2,opt,name=checksum,proto3" json:"checksum,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FinishUploadRequest) Reset() {
	*x = FinishUploadRequest{}
	mi := &file_heirvault_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinishUploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinishUploadRequest) ProtoMessage() {}

func (x *FinishUploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FinishUploadRequest.ProtoReflect.Descriptor instead.
func (*FinishUploadRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{26}
}

func (x *FinishUploadRequest) GetUploadId() string {
	if x != nil {
		return x.UploadId
	}
	return ""
}

func (x *FinishUploadRequest) GetChecksum() string {
	if x != nil {
		return x.Checksum
	}
	return ""
}

type AbortUploadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UploadId      string                 `protobuf:"bytes,1,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AbortUploadRequest) Reset() {
	*x = AbortUploadRequest{}
	mi := &file_heirvault_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AbortUploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AbortUploadRequest) ProtoMessage() {}

func (x *AbortUploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AbortUploadRequest.ProtoReflect.Descriptor instead.
func (*AbortUploadRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{27}
}

func (x *AbortUploadRequest) GetUploadId() string {
	if x != nil {
		return x.UploadId
	}
	return ""
}

type AbortUploadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AbortUploadResponse) Reset() {
	*x = AbortUploadResponse{}
	mi := &file_heirvault_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AbortUploadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AbortUploadResponse) ProtoMessage() {}

func (x *AbortUploadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AbortUploadResponse.ProtoReflect.Descriptor instead.
func (*AbortUploadResponse) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{28}
}

type ContentItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	VaultId       string                 `protobuf:"bytes,2,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	ContentType   string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Title         string                 `protobuf:"bytes,4,opt,name=title,proto3" json:"title,omitempty"`
	MimeType      string                 `protobuf:"bytes,5,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	SizeBytes     int64                  `protobuf:"varint,6,opt,name=size_bytes,json=sizeBytes,proto3" json:"size_bytes,omitempty"`
	Checksum      string                 `protobuf:"bytes,7,opt,name=checksum,proto3" json:"checksum,omitempty"`
	CreatedAtUnix int64                  `protobuf:"varint,8,opt,name=created_at_unix,json=createdAtUnix,proto3" json:"created_at_unix,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ContentItem) Reset() {
	*x = ContentItem{}
	mi := &file_heirvault_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ContentItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ContentItem) ProtoMessage() {}

func (x *ContentItem) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ContentItem.ProtoReflect.Descriptor instead.
func (*ContentItem) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{29}
}

func (x *ContentItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ContentItem) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

func (x *ContentItem) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *ContentItem) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *ContentItem) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *ContentItem) GetSizeBytes() int64 {
	if x != nil {
		return x.SizeBytes
	}
	return 0
}

func (x *ContentItem) GetChecksum() string {
	if x != nil {
		return x.Checksum
	}
	return ""
}

func (x *ContentItem) GetCreatedAtUnix() int64 {
	if x != nil {
		return x.CreatedAtUnix
	}
	return 0
}

type ContentItemResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *ContentItem           `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ContentItemResponse) Reset() {
	*x = ContentItemResponse{}
	mi := &file_heirvault_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ContentItemResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ContentItemResponse) ProtoMessage() {}

func (x *ContentItemResponse) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ContentItemResponse.ProtoReflect.Descriptor instead.
func (*ContentItemResponse) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{30}
}

func (x *ContentItemResponse) GetItem() *ContentItem {
	if x != nil {
		return x.Item
	}
	return nil
}

type ListContentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VaultId       string                 `protobuf:"bytes,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContentRequest) Reset() {
	*x = ListContentRequest{}
	mi := &file_heirvault_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContentRequest) ProtoMessage() {}

func (x *ListContentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContentRequest.ProtoReflect.Descriptor instead.
func (*ListContentRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{31}
}

func (x *ListContentRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

type ListContentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*ContentItem         `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContentResponse) Reset() {
	*x = ListContentResponse{}
	mi := &file_heirvault_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContentResponse) ProtoMessage() {}

func (x *ListContentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContentResponse.ProtoReflect.Descriptor instead.
func (*ListContentResponse) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{32}
}

func (x *ListContentResponse) GetItems() []*ContentItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type DownloadContentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VaultId       string                 `protobuf:"bytes,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	ContentId     string                 `protobuf:"bytes,2,opt,name=content_id,json=contentId,proto3" json:"content_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DownloadContentRequest) Reset() {
	*x = DownloadContentRequest{}
	mi := &file_heirvault_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DownloadContentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DownloadContentRequest) ProtoMessage() {}

func (x *DownloadContentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DownloadContentRequest.ProtoReflect.Descriptor instead.
func (*DownloadContentRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{33}
}

func (x *DownloadContentRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

func (x *DownloadContentRequest) GetContentId() string {
	if x != nil {
		return x.ContentId
	}
	return ""
}

type DownloadContentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          *ContentItem           `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	Payload       []byte                 `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	Url           string                 `protobuf:"bytes,3,opt,name=url,proto3" json:"url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DownloadContentResponse) Reset() {
	*x = DownloadContentResponse{}
	mi := &file_heirvault_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DownloadContentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DownloadContentResponse) ProtoMessage() {}

func (x *DownloadContentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DownloadContentResponse.ProtoReflect.Descriptor instead.
func (*DownloadContentResponse) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{34}
}

func (x *DownloadContentResponse) GetItem() *ContentItem {
	if x != nil {
		return x.Item
	}
	return nil
}

func (x *DownloadContentResponse) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *DownloadContentResponse) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

type DeleteContentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VaultId       string                 `protobuf:"bytes,1,opt,name=vault_id,json=vaultId,proto3" json:"vault_id,omitempty"`
	ContentId     string                 `protobuf:"bytes,2,opt,name=content_id,json=contentId,proto3" json:"content_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteContentRequest) Reset() {
	*x = DeleteContentRequest{}
	mi := &file_heirvault_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteContentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteContentRequest) ProtoMessage() {}

func (x *DeleteContentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteContentRequest.ProtoReflect.Descriptor instead.
func (*DeleteContentRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{35}
}

func (x *DeleteContentRequest) GetVaultId() string {
	if x != nil {
		return x.VaultId
	}
	return ""
}

func (x *DeleteContentRequest) GetContentId() string {
	if x != nil {
		return x.ContentId
	}
	return ""
}

type DeleteContentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteContentResponse) Reset() {
	*x = DeleteContentResponse{}
	mi := &file_heirvault_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteContentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteContentResponse) ProtoMessage() {}

func (x *DeleteContentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteContentResponse.ProtoReflect.Descriptor instead.
func (*DeleteContentResponse) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{36}
}

type SetSettingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Key           string                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value         string                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetSettingRequest) Reset() {
	*x = SetSettingRequest{}
	mi := &file_heirvault_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetSettingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetSettingRequest) ProtoMessage() {}

func (x *SetSettingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetSettingRequest.ProtoReflect.Descriptor instead.
func (*SetSettingRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{37}
}

func (x *SetSettingRequest) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *SetSettingRequest) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type SetSettingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetSettingResponse) Reset() {
	*x = SetSettingResponse{}
	mi := &file_heirvault_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetSettingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetSettingResponse) ProtoMessage() {}

func (x *SetSettingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetSettingResponse.ProtoReflect.Descriptor instead.
func (*SetSettingResponse) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{38}
}

type RunMaintenanceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunMaintenanceRequest) Reset() {
	*x = RunMaintenanceRequest{}
	mi := &file_heirvault_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunMaintenanceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunMaintenanceRequest) ProtoMessage() {}

func (x *RunMaintenanceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunMaintenanceRequest.ProtoReflect.Descriptor instead.
func (*RunMaintenanceRequest) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{39}
}

type RunMaintenanceResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	InvitesExpired int32                  `protobuf:"varint,1,opt,name=invites_expired,json=invitesExpired,proto3" json:"invites_expired,omitempty"`
	VaultsAdvanced int32                  `protobuf:"varint,2,opt,name=vaults_advanced,json=vaultsAdvanced,proto3" json:"vaults_advanced,omitempty"`
	OutboxDrained  int32                  `protobuf:"varint,3,opt,name=outbox_drained,json=outboxDrained,proto3" json:"outbox_drained,omitempty"`
	VaultsCascaded int32                  `protobuf:"varint,4,opt,name=vaults_cascaded,json=vaultsCascaded,proto3" json:"vaults_cascaded,omitempty"`
	UploadsEvicted int32                  `protobuf:"varint,5,opt,name=uploads_evicted,json=uploadsEvicted,proto3" json:"uploads_evicted,omitempty"`
	Errors         int32                  `protobuf:"varint,6,opt,name=errors,proto3" json:"errors,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *RunMaintenanceResponse) Reset() {
	*x = RunMaintenanceResponse{}
	mi := &file_heirvault_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunMaintenanceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunMaintenanceResponse) ProtoMessage() {}

func (x *RunMaintenanceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_heirvault_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunMaintenanceResponse.ProtoReflect.Descriptor instead.
func (*RunMaintenanceResponse) Descriptor() ([]byte, []int) {
	return file_heirvault_proto_rawDescGZIP(), []int{40}
}

func (x *RunMaintenanceResponse) GetInvitesExpired() int32 {
	if x != nil {
		return x.InvitesExpired
	}
	return 0
}

func (x *RunMaintenanceResponse) GetVaultsAdvanced() int32 {
	if x != nil {
		return x.VaultsAdvanced
	}
	return 0
}

func (x *RunMaintenanceResponse) GetOutboxDrained() int32 {
	if x != nil {
		return x.OutboxDrained
	}
	return 0
}

func (x *RunMaintenanceResponse) GetVaultsCascaded() int32 {
	if x != nil {
		return x.VaultsCascaded
	}
	return 0
}

func (x *RunMaintenanceResponse) GetUploadsEvicted() int32 {
	if x != nil {
		return x.UploadsEvicted
	}
	return 0
}

func (x *RunMaintenanceResponse) GetErrors() int32 {
	if x != nil {
		return x.Errors
	}
	return 0
}

var File_heirvault_proto protoreflect.FileDescriptor

const file_heirvault_proto_rawDesc = "" +
	"\n" +
	"\x0fheirvault.proto\x12\x11heirvault.service\"\r\n" +
	"\vPingRequest\"&\n" +
	"\fPingResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"\xdd\x01\n" +
	"\x10UnlockConditions\x12$\n" +
	"\x0eunlock_at_unix\x18\x01 \x01(\x03R\funlockAtUnix\x12-\n" +
	"\x12inactivity_seconds\x18\x02 \x01(\x03R\x11inactivitySeconds\x126\n" +
	"\x17required_heir_approvals\x18\x03 \x01(\x05R\x15requiredHeirApprovals\x12<\n" +
	"\x1arequired_witness_approvals\x18\x04 \x01(\x05R\x18requiredWitnessApprovals\"\x83\x03\n" +
	"\x05Vault\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x12\n" +
	"\x04plan\x18\x06 \x01(\tR\x04plan\x12.\n" +
	"\x13storage_quota_bytes\x18\a \x01(\x03R\x11storageQuotaBytes\x12C\n" +
	"\n" +
	"conditions\x18\b \x01(\v2#.heirvault.service.UnlockConditionsR\n" +
	"conditions\x12&\n" +
	"\x0fcreated_at_unix\x18\t \x01(\x03R\rcreatedAtUnix\x12&\n" +
	"\x0fexpires_at_unix\x18\n" +
	" \x01(\x03R\rexpiresAtUnix\x12(\n" +
	"\x10unlocked_at_unix\x18\v \x01(\x03R\x0eunlockedAtUnix\"\xa3\x01\n" +
	"\x12CreateVaultRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x12\n" +
	"\x04plan\x18\x03 \x01(\tR\x04plan\x12C\n" +
	"\n" +
	"conditions\x18\x04 \x01(\v2#.heirvault.service.UnlockConditionsR\n" +
	"conditions\",\n" +
	"\x0fGetVaultRequest\x12\x19\n" +
	"\bvault_id\x18\x01 \x01(\tR\avaultId\"1\n" +
	"\x14FinalizeSetupRequest\x12\x19\n" +
	"\bvault_id\x18\x01 \x01(\tR\avaultId\"?\n" +
	"\rVaultResponse\x12.\n" +
	"\x05vault\x18\x01 \x01(\v2\x18.heirvault.service.VaultR\x05vault\"1\n" +
	"\x14ApproveUnlockRequest\x12\x19\n" +
	"\bvault_id\x18\x01 \x01(\tR\avaultId\"k\n" +
	"\x15ApproveUnlockResponse\x12%\n" +
	"\x0eheir_approvals\x18\x01 \x01(\x05R\rheirApprovals\x12+\n" +
	"\x11witness_approvals\x18\x02 \x01(\x05R\x10witnessApprovals\"1\n" +
	"\x14TriggerUnlockRequest\x12\x19\n" +
	"\bvault_id\x18\x01 \x01(\tR\avaultId\"/\n" +
	"\x12DeleteVaultRequest\x12\x19\n" +
	"\bvault_id\x18\x01 \x01(\tR\avaultId\"F\n" +
	"\x15GenerateInviteRequest\x12\x19\n" +
	"\bvault_id\x18\x01 \x01(\tR\avaultId\x12\x12\n" +
	"\x04role\x18\x02 \x01(\tR\x04role\"\x9f\x01\n" +
	"\x16GenerateInviteResponse\x12\x1b\n" +
	"\tinvite_id\x18\x01 \x01(\tR\binviteId\x12\x1f\n" +
	"\vclaim_token\x18\x02 \x01(\tR\n" +
	"claimToken\x12\x1f\n" +
	"\vshare_index\x18\x03 \x01(\x05R\n" +
	"shareIndex\x12&\n" +
	"\x0fexpires_at_unix\x18\x04 \x01(\x03R\rexpiresAtUnix\"X\n" +
	"\x12ClaimInviteRequest\x12\x1f\n" +
	"\vclaim_token\x18\x01 \x01(\tR\n" +
	"claimToken\x12!\n" +
	"\fdisplay_name\x18\x02 \x01(\tR\vdisplayName\"\x82\x01\n" +
	"\x13ClaimInviteResponse\x12\x19\n" +
	"\bvault_id\x18\x01 \x01(\tR\avaultId\x12\x1b\n" +
	"\tmember_id\x18\x02 \x01(\tR\bmemberId\x12\x12\n" +
	"\x04role\x18\x03 \x01(\tR\x04role\x12\x1f\n" +
	"\vshare_index\x18\x04 \x01(\x05R\n" +
	"shareIndex\"M\n" +
	"\x13RevokeInviteRequest\x12\x19\n" +
	"\bvault_id\x18\x01 \x01(\tR\avaultId\x12\x1b\n" +
	"\tinvite_id\x18\x02 \x01(\tR\binviteId\"\x16\n" +
	"\x14RevokeInviteResponse\"c\n" +
	"\x18InitializePaymentRequest\x12\x19\n" +
	"\bvault_id\x18\x01 \x01(\tR\avaultId\x12\x18\n" +
	"\apurpose\x18\x02 \x01(\tR\apurpose\x12\x12\n" +
	"\x04plan\x18\x03 \x01(\tR\x04plan\"V\n" +
	"\x14VerifyPaymentRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x1f\n" +
	"\vblock_index\x18\x02 \x01(\x04R\n" +
	"blockIndex\"4\n" +
	"\x13ClosePaymentRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"\xd0\x01\n" +
	"\x0fPaymentResponse\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x14\n" +
	"\x05state\x18\x02 \x01(\tR\x05state\x12\x18\n" +
	"\aaccount\x18\x03 \x01(\tR\aaccount\x12'\n" +
	"\x0fexpected_amount\x18\x04 \x01(\x03R\x0eexpectedAmount\x12&\n" +
	"\x0fexpires_at_unix\x18\x05 \x01(\x03R\rexpiresAtUnix\x12\x1d\n" +
	"\n" +
	"ledger_ref\x18\x06 \x01(\tR\tledgerRef\"\xf0\x01\n" +
	"\x12BeginUploadRequest\x12\x19\n" +
	"\bvault_id\x18\x01 \x01(\tR\avaultId\x12!\n" +
	"\fcontent_type\x18\x02 \x01(\tR\vcontentType\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12\x1b\n" +
	"\tfile_name\x18\x04 \x01(\tR\bfileName\x12\x1b\n" +
	"\tmime_type\x18\x05 \x01(\tR\bmimeType\x12#\n" +
	"\rdeclared_size\x18\x06 \x01(\x03R\fdeclaredSize\x12'\n" +
	"\x0fexpected_chunks\x18\a \x01(\x05R\x0eexpectedChunks\"2\n" +
	"\x13BeginUploadResponse\x12\x1b\n" +
	"\tupload_id\x18\x01 \x01(\tR\buploadId\"W\n" +
	"\x12UploadChunkRequest\x12\x1b\n" +
	"\tupload_id\x18\x01 \x01(\tR\buploadId\x12\x10\n" +
	"\x03seq\x18\x02 \x01(\x05R\x03seq\x12\x12\n" +
	"\x04data\x18\x03 \x01(\fR\x04data\">\n" +
	"\x13UploadChunkResponse\x12'\n" +
	"\x0freceived_chunks\x18\x01 \x01(\x05R\x0ereceivedChunks\"N\n" +
	"\x13FinishUploadRequest\x12\x1b\n" +
	"\tupload_id\x18\x01 \x01(\tR\buploadId\x12\x1a\n" +
	"\bchecksum\x18\x02 \x01(\tR\bchecksum\"1\n" +
	"\x12AbortUploadRequest\x12\x1b\n" +
	"\tupload_id\x18\x01 \x01(\tR\buploadId\"\x15\n" +
	"\x13AbortUploadResponse\"\xf1\x01\n" +
	"\vContentItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bvault_id\x18\x02 \x01(\tR\avaultId\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\x12\x14\n" +
	"\x05title\x18\x04 \x01(\tR\x05title\x12\x1b\n" +
	"\tmime_type\x18\x05 \x01(\tR\bmimeType\x12\x1d\n" +
	"\n" +
	"size_bytes\x18\x06 \x01(\x03R\tsizeBytes\x12\x1a\n" +
	"\bchecksum\x18\a \x01(\tR\bchecksum\x12&\n" +
	"\x0fcreated_at_unix\x18\b \x01(\x03R\rcreatedAtUnix\"I\n" +
	"\x13ContentItemResponse\x122\n" +
	"\x04item\x18\x01 \x01(\v2\x1e.heirvault.service.ContentItemR\x04item\"/\n" +
	"\x12ListContentRequest\x12\x19\n" +
	"\bvault_id\x18\x01 \x01(\tR\avaultId\"K\n" +
	"\x13ListContentResponse\x124\n" +
	"\x05items\x18\x01 \x03(\v2\x1e.heirvault.service.ContentItemR\x05items\"R\n" +
	"\x16DownloadContentRequest\x12\x19\n" +
	"\bvault_id\x18\x01 \x01(\tR\avaultId\x12\x1d\n" +
	"\n" +
	"content_id\x18\x02 \x01(\tR\tcontentId\"y\n" +
	"\x17DownloadContentResponse\x122\n" +
	"\x04item\x18\x01 \x01(\v2\x1e.heirvault.service.ContentItemR\x04item\x12\x18\n" +
	"\apayload\x18\x02 \x01(\fR\apayload\x12\x10\n" +
	"\x03url\x18\x03 \x01(\tR\x03url\"P\n" +
	"\x14DeleteContentRequest\x12\x19\n" +
	"\bvault_id\x18\x01 \x01(\tR\avaultId\x12\x1d\n" +
	"\n" +
	"content_id\x18\x02 \x01(\tR\tcontentId\"\x17\n" +
	"\x15DeleteContentResponse\";\n" +
	"\x11SetSettingRequest\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\"\x14\n" +
	"\x12SetSettingResponse\"\x17\n" +
	"\x15RunMaintenanceRequest\"\xfb\x01\n" +
	"\x16RunMaintenanceResponse\x12'\n" +
	"\x0finvites_expired\x18\x01 \x01(\x05R\x0einvitesExpired\x12'\n" +
	"\x0fvaults_advanced\x18\x02 \x01(\x05R\x0evaultsAdvanced\x12%\n" +
	"\x0eoutbox_drained\x18\x03 \x01(\x05R\routboxDrained\x12'\n" +
	"\x0fvaults_cascaded\x18\x04 \x01(\x05R\x0evaultsCascaded\x12'\n" +
	"\x0fuploads_evicted\x18\x05 \x01(\x05R\x0euploadsEvicted\x12\x16\n" +
	"\x06errors\x18\x06 \x01(\x05R\x06errors2\xa7\x10\n" +
	"\x10HeirVaultService\x12G\n" +
	"\x04Ping\x12\x1e.heirvault.service.PingRequest\x1a\x1f.heirvault.service.PingResponse\x12V\n" +
	"\vCreateVault\x12%.heirvault.service.CreateVaultRequest\x1a .heirvault.service.VaultResponse\x12P\n" +
	"\bGetVault\x12\".heirvault.service.GetVaultRequest\x1a .heirvault.service.VaultResponse\x12Z\n" +
	"\rFinalizeSetup\x12'.heirvault.service.FinalizeSetupRequest\x1a .heirvault.service.VaultResponse\x12b\n" +
	"\rApproveUnlock\x12'.heirvault.service.ApproveUnlockRequest\x1a(.heirvault.service.ApproveUnlockResponse\x12Z\n" +
	"\rTriggerUnlock\x12'.heirvault.service.TriggerUnlockRequest\x1a .heirvault.service.VaultResponse\x12V\n" +
	"\vDeleteVault\x12%.heirvault.service.DeleteVaultRequest\x1a .heirvault.service.VaultResponse\x12e\n" +
	"\x0eGenerateInvite\x12(.heirvault.service.GenerateInviteRequest\x1a).heirvault.service.GenerateInviteResponse\x12\\\n" +
	"\vClaimInvite\x12%.heirvault.service.ClaimInviteRequest\x1a&.heirvault.service.ClaimInviteResponse\x12_\n" +
	"\fRevokeInvite\x12&.heirvault.service.RevokeInviteRequest\x1a'.heirvault.service.RevokeInviteResponse\x12d\n" +
	"\x11InitializePayment\x12+.heirvault.service.InitializePaymentRequest\x1a\".heirvault.service.PaymentResponse\x12\\\n" +
	"\rVerifyPayment\x12'.heirvault.service.VerifyPaymentRequest\x1a\".heirvault.service.PaymentResponse\x12Z\n" +
	"\fClosePayment\x12&.heirvault.service.ClosePaymentRequest\x1a\".heirvault.service.PaymentResponse\x12\\\n" +
	"\vBeginUpload\x12%.heirvault.service.BeginUploadRequest\x1a&.heirvault.service.BeginUploadResponse\x12\\\n" +
	"\vUploadChunk\x12%.heirvault.service.UploadChunkRequest\x1a&.heirvault.service.UploadChunkResponse\x12^\n" +
	"\fFinishUpload\x12&.heirvault.service.FinishUploadRequest\x1a&.heirvault.service.ContentItemResponse\x12\\\n" +
	"\vAbortUpload\x12%.heirvault.service.AbortUploadRequest\x1a&.heirvault.service.AbortUploadResponse\x12\\\n" +
	"\vListContent\x12%.heirvault.service.ListContentRequest\x1a&.heirvault.service.ListContentResponse\x12h\n" +
	"\x0fDownloadContent\x12).heirvault.service.DownloadContentRequest\x1a*.heirvault.service.DownloadContentResponse\x12b\n" +
	"\rDeleteContent\x12'.heirvault.service.DeleteContentRequest\x1a(.heirvault.service.DeleteContentResponse\x12Y\n" +
	"\n" +
	"SetSetting\x12$.heirvault.service.SetSettingRequest\x1a%.heirvault.service.SetSettingResponse\x12e\n" +
	"\x0eRunMaintenance\x12(.heirvault.service.RunMaintenanceRequest\x1a).heirvault.service.RunMaintenanceResponseB.Z,github.com/dpetrovs/heirvault/internal/protob\x06proto3"

var (
	file_heirvault_proto_rawDescOnce sync.Once
	file_heirvault_proto_rawDescData []byte
)

func file_heirvault_proto_rawDescGZIP() []byte {
	file_heirvault_proto_rawDescOnce.Do(func() {
		file_heirvault_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_heirvault_proto_rawDesc), len(file_heirvault_proto_rawDesc)))
	})
	return file_heirvault_proto_rawDescData
}

var file_heirvault_proto_msgTypes = make([]protoimpl.MessageInfo, 41)
var file_heirvault_proto_goTypes = []any{
	(*PingRequest)(nil),              // 0: heirvault.service.PingRequest
	(*PingResponse)(nil),             // 1: heirvault.service.PingResponse
	(*UnlockConditions)(nil),         // 2: heirvault.service.UnlockConditions
	(*Vault)(nil),                    // 3: heirvault.service.Vault
	(*CreateVaultRequest)(nil),       // 4: heirvault.service.CreateVaultRequest
	(*GetVaultRequest)(nil),          // 5: heirvault.service.GetVaultRequest
	(*FinalizeSetupRequest)(nil),     // 6: heirvault.service.FinalizeSetupRequest
	(*VaultResponse)(nil),            // 7: heirvault.service.VaultResponse
	(*ApproveUnlockRequest)(nil),     // 8: heirvault.service.ApproveUnlockRequest
	(*ApproveUnlockResponse)(nil),    // 9: heirvault.service.ApproveUnlockResponse
	(*TriggerUnlockRequest)(nil),     // 10: heirvault.service.TriggerUnlockRequest
	(*DeleteVaultRequest)(nil),       // 11: heirvault.service.DeleteVaultRequest
	(*GenerateInviteRequest)(nil),    // 12: heirvault.service.GenerateInviteRequest
	(*GenerateInviteResponse)(nil),   // 13: heirvault.service.GenerateInviteResponse
	(*ClaimInviteRequest)(nil),       // 14: heirvault.service.ClaimInviteRequest
	(*ClaimInviteResponse)(nil),      // 15: heirvault.service.ClaimInviteResponse
	(*RevokeInviteRequest)(nil),      // 16: heirvault.service.RevokeInviteRequest
	(*RevokeInviteResponse)(nil),     // 17: heirvault.service.RevokeInviteResponse
	(*InitializePaymentRequest)(nil), // 18: heirvault.service.InitializePaymentRequest
	(*VerifyPaymentRequest)(nil),     // 19: heirvault.service.VerifyPaymentRequest
	(*ClosePaymentRequest)(nil),      // 20: heirvault.service.ClosePaymentRequest
	(*PaymentResponse)(nil),          // 21: heirvault.service.PaymentResponse
	(*BeginUploadRequest)(nil),       // 22: heirvault.service.BeginUploadRequest
	(*BeginUploadResponse)(nil),      // 23: heirvault.service.BeginUploadResponse
	(*UploadChunkRequest)(nil),       // 24: heirvault.service.UploadChunkRequest
	(*UploadChunkResponse)(nil),      // 25: heirvault.service.UploadChunkResponse
	(*FinishUploadRequest)(nil),      // 26: heirvault.service.FinishUploadRequest
	(*AbortUploadRequest)(nil),       // 27: heirvault.service.AbortUploadRequest
	(*AbortUploadResponse)(nil),      // 28: heirvault.service.AbortUploadResponse
	(*ContentItem)(nil),              // 29: heirvault.service.ContentItem
	(*ContentItemResponse)(nil),      // 30: heirvault.service.ContentItemResponse
	(*ListContentRequest)(nil),       // 31: heirvault.service.ListContentRequest
	(*ListContentResponse)(nil),      // 32: heirvault.service.ListContentResponse
	(*DownloadContentRequest)(nil),   // 33: heirvault.service.DownloadContentRequest
	(*DownloadContentResponse)(nil),  // 34: heirvault.service.DownloadContentResponse
	(*DeleteContentRequest)(nil),     // 35: heirvault.service.DeleteContentRequest
	(*DeleteContentResponse)(nil),    // 36: heirvault.service.DeleteContentResponse
	(*SetSettingRequest)(nil),        // 37: heirvault.service.SetSettingRequest
	(*SetSettingResponse)(nil),       // 38: heirvault.service.SetSettingResponse
	(*RunMaintenanceRequest)(nil),    // 39: heirvault.service.RunMaintenanceRequest
	(*RunMaintenanceResponse)(nil),   // 40: heirvault.service.RunMaintenanceResponse
}
var file_heirvault_proto_depIdxs = []int32{
	2,  // 0: heirvault.service.Vault.conditions:type_name -> heirvault.service.UnlockConditions
	2,  // 1: heirvault.service.CreateVaultRequest.conditions:type_name -> heirvault.service.UnlockConditions
	3,  // 2: heirvault.service.VaultResponse.vault:type_name -> heirvault.service.Vault
	29, // 3: heirvault.service.ContentItemResponse.item:type_name -> heirvault.service.ContentItem
	29, // 4: heirvault.service.ListContentResponse.items:type_name -> heirvault.service.ContentItem
	29, // 5: heirvault.service.DownloadContentResponse.item:type_name -> heirvault.service.ContentItem
	0,  // 6: heirvault.service.HeirVaultService.Ping:input_type -> heirvault.service.PingRequest
	4,  // 7: heirvault.service.HeirVaultService.CreateVault:input_type -> heirvault.service.CreateVaultRequest
	5,  // 8: heirvault.service.HeirVaultService.GetVault:input_type -> heirvault.service.GetVaultRequest
	6,  // 9: heirvault.service.HeirVaultService.FinalizeSetup:input_type -> heirvault.service.FinalizeSetupRequest
	8,  // 10: heirvault.service.HeirVaultService.ApproveUnlock:input_type -> heirvault.service.ApproveUnlockRequest
	10, // 11: heirvault.service.HeirVaultService.TriggerUnlock:input_type -> heirvault.service.TriggerUnlockRequest
	11, // 12: heirvault.service.HeirVaultService.DeleteVault:input_type -> heirvault.service.DeleteVaultRequest
	12, // 13: heirvault.service.HeirVaultService.GenerateInvite:input_type -> heirvault.service.GenerateInviteRequest
	14, // 14: heirvault.service.HeirVaultService.ClaimInvite:input_type -> heirvault.service.ClaimInviteRequest
	16, // 15: heirvault.service.HeirVaultService.RevokeInvite:input_type -> heirvault.service.RevokeInviteRequest
	18, // 16: heirvault.service.HeirVaultService.InitializePayment:input_type -> heirvault.service.InitializePaymentRequest
	19, // 17: heirvault.service.HeirVaultService.VerifyPayment:input_type -> heirvault.service.VerifyPaymentRequest
	20, // 18: heirvault.service.HeirVaultService.ClosePayment:input_type -> heirvault.service.ClosePaymentRequest
	22, // 19: heirvault.service.HeirVaultService.BeginUpload:input_type -> heirvault.service.BeginUploadRequest
	24, // 20: heirvault.service.HeirVaultService.UploadChunk:input_type -> heirvault.service.UploadChunkRequest
	26, // 21: heirvault.service.HeirVaultService.FinishUpload:input_type -> heirvault.service.FinishUploadRequest
	27, // 22: heirvault.service.HeirVaultService.AbortUpload:input_type -> heirvault.service.AbortUploadRequest
	31, // 23: heirvault.service.HeirVaultService.ListContent:input_type -> heirvault.service.ListContentRequest
	33, // 24: heirvault.service.HeirVaultService.DownloadContent:input_type -> heirvault.service.DownloadContentRequest
	35, // 25: heirvault.service.HeirVaultService.DeleteContent:input_type -> heirvault.service.DeleteContentRequest
	37, // 26: heirvault.service.HeirVaultService.SetSetting:input_type -> heirvault.service.SetSettingRequest
	39, // 27: heirvault.service.HeirVaultService.RunMaintenance:input_type -> heirvault.service.RunMaintenanceRequest
	1,  // 28: heirvault.service.HeirVaultService.Ping:output_type -> heirvault.service.PingResponse
	7,  // 29: heirvault.service.HeirVaultService.CreateVault:output_type -> heirvault.service.VaultResponse
	7,  // 30: heirvault.service.HeirVaultService.GetVault:output_type -> heirvault.service.VaultResponse
	7,  // 31: heirvault.service.HeirVaultService.FinalizeSetup:output_type -> heirvault.service.VaultResponse
	9,  // 32: heirvault.service.HeirVaultService.ApproveUnlock:output_type -> heirvault.service.ApproveUnlockResponse
	7,  // 33: heirvault.service.HeirVaultService.TriggerUnlock:output_type -> heirvault.service.VaultResponse
	7,  // 34: heirvault.service.HeirVaultService.DeleteVault:output_type -> heirvault.service.VaultResponse
	13, // 35: heirvault.service.HeirVaultService.GenerateInvite:output_type -> heirvault.service.GenerateInviteResponse
	15, // 36: heirvault.service.HeirVaultService.ClaimInvite:output_type -> heirvault.service.ClaimInviteResponse
	17, // 37: heirvault.service.HeirVaultService.RevokeInvite:output_type -> heirvault.service.RevokeInviteResponse
	21, // 38: heirvault.service.HeirVaultService.InitializePayment:output_type -> heirvault.service.PaymentResponse
	21, // 39: heirvault.service.HeirVaultService.VerifyPayment:output_type -> heirvault.service.PaymentResponse
	21, // 40: heirvault.service.HeirVaultService.ClosePayment:output_type -> heirvault.service.PaymentResponse
	23, // 41: heirvault.service.HeirVaultService.BeginUpload:output_type -> heirvault.service.BeginUploadResponse
	25, // 42: heirvault.service.HeirVaultService.UploadChunk:output_type -> heirvault.service.UploadChunkResponse
	30, // 43: heirvault.service.HeirVaultService.FinishUpload:output_type -> heirvault.service.ContentItemResponse
	28, // 44: heirvault.service.HeirVaultService.AbortUpload:output_type -> heirvault.service.AbortUploadResponse
	32, // 45: heirvault.service.HeirVaultService.ListContent:output_type -> heirvault.service.ListContentResponse
	34, // 46: heirvault.service.HeirVaultService.DownloadContent:output_type -> heirvault.service.DownloadContentResponse
	36, // 47: heirvault.service.HeirVaultService.DeleteContent:output_type -> heirvault.service.DeleteContentResponse
	38, // 48: heirvault.service.HeirVaultService.SetSetting:output_type -> heirvault.service.SetSettingResponse
	40, // 49: heirvault.service.HeirVaultService.RunMaintenance:output_type -> heirvault.service.RunMaintenanceResponse
	28, // [28:50] is the sub-list for method output_type
	6,  // [6:28] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_heirvault_proto_init() }
func file_heirvault_proto_init() {
	if File_heirvault_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_heirvault_proto_rawDesc), len(file_heirvault_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   41,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_heirvault_proto_goTypes,
		DependencyIndexes: file_heirvault_proto_depIdxs,
		MessageInfos:      file_heirvault_proto_msgTypes,
	}.Build()
	File_heirvault_proto = out.File
	file_heirvault_proto_goTypes = nil
	file_heirvault_proto_depIdxs = nil
}
