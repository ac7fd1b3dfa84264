// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: neurosoft/v1/neurosoft.proto

package neurosoftpb

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

type Patient struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Dni           string                 `protobuf:"bytes,3,opt,name=dni,proto3" json:"dni,omitempty"`
	BirthDate     string                 `protobuf:"bytes,4,opt,name=birth_date,json=birthDate,proto3" json:"birth_date,omitempty"`
	Insurer       string                 `protobuf:"bytes,5,opt,name=insurer,proto3" json:"insurer,omitempty"`
	MemberId      string                 `protobuf:"bytes,6,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Patient) Reset() {
	*x = Patient{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Patient) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Patient) ProtoMessage() {}

func (x *Patient) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Patient.ProtoReflect.Descriptor instead.
func (*Patient) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{0}
}

func (x *Patient) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Patient) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Patient) GetDni() string {
	if x != nil {
		return x.Dni
	}
	return ""
}

func (x *Patient) GetBirthDate() string {
	if x != nil {
		return x.BirthDate
	}
	return ""
}

func (x *Patient) GetInsurer() string {
	if x != nil {
		return x.Insurer
	}
	return ""
}

func (x *Patient) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

func (x *Patient) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Patient) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreatePatientRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Dni           string                 `protobuf:"bytes,2,opt,name=dni,proto3" json:"dni,omitempty"`
	BirthDate     string                 `protobuf:"bytes,3,opt,name=birth_date,json=birthDate,proto3" json:"birth_date,omitempty"`
	Insurer       string                 `protobuf:"bytes,4,opt,name=insurer,proto3" json:"insurer,omitempty"`
	MemberId      string                 `protobuf:"bytes,5,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePatientRequest) Reset() {
	*x = CreatePatientRequest{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePatientRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePatientRequest) ProtoMessage() {}

func (x *CreatePatientRequest) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePatientRequest.ProtoReflect.Descriptor instead.
func (*CreatePatientRequest) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{1}
}

func (x *CreatePatientRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreatePatientRequest) GetDni() string {
	if x != nil {
		return x.Dni
	}
	return ""
}

func (x *CreatePatientRequest) GetBirthDate() string {
	if x != nil {
		return x.BirthDate
	}
	return ""
}

func (x *CreatePatientRequest) GetInsurer() string {
	if x != nil {
		return x.Insurer
	}
	return ""
}

func (x *CreatePatientRequest) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

type CreatePatientResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Patient       *Patient               `protobuf:"bytes,1,opt,name=patient,proto3" json:"patient,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePatientResponse) Reset() {
	*x = CreatePatientResponse{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePatientResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePatientResponse) ProtoMessage() {}

func (x *CreatePatientResponse) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePatientResponse.ProtoReflect.Descriptor instead.
func (*CreatePatientResponse) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{2}
}

func (x *CreatePatientResponse) GetPatient() *Patient {
	if x != nil {
		return x.Patient
	}
	return nil
}

type GetPatientRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPatientRequest) Reset() {
	*x = GetPatientRequest{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPatientRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPatientRequest) ProtoMessage() {}

func (x *GetPatientRequest) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPatientRequest.ProtoReflect.Descriptor instead.
func (*GetPatientRequest) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{3}
}

func (x *GetPatientRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetPatientResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Patient       *Patient               `protobuf:"bytes,1,opt,name=patient,proto3" json:"patient,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPatientResponse) Reset() {
	*x = GetPatientResponse{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPatientResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPatientResponse) ProtoMessage() {}

func (x *GetPatientResponse) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPatientResponse.ProtoReflect.Descriptor instead.
func (*GetPatientResponse) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{4}
}

func (x *GetPatientResponse) GetPatient() *Patient {
	if x != nil {
		return x.Patient
	}
	return nil
}

type ListPatientsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPatientsRequest) Reset() {
	*x = ListPatientsRequest{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPatientsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPatientsRequest) ProtoMessage() {}

func (x *ListPatientsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPatientsRequest.ProtoReflect.Descriptor instead.
func (*ListPatientsRequest) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{5}
}

type ListPatientsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Patients      []*Patient             `protobuf:"bytes,1,rep,name=patients,proto3" json:"patients,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPatientsResponse) Reset() {
	*x = ListPatientsResponse{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPatientsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPatientsResponse) ProtoMessage() {}

func (x *ListPatientsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPatientsResponse.ProtoReflect.Descriptor instead.
func (*ListPatientsResponse) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{6}
}

func (x *ListPatientsResponse) GetPatients() []*Patient {
	if x != nil {
		return x.Patients
	}
	return nil
}

type UpdatePatientRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Dni           string                 `protobuf:"bytes,3,opt,name=dni,proto3" json:"dni,omitempty"`
	BirthDate     string                 `protobuf:"bytes,4,opt,name=birth_date,json=birthDate,proto3" json:"birth_date,omitempty"`
	Insurer       string                 `protobuf:"bytes,5,opt,name=insurer,proto3" json:"insurer,omitempty"`
	MemberId      string                 `protobuf:"bytes,6,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdatePatientRequest) Reset() {
	*x = UpdatePatientRequest{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePatientRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePatientRequest) ProtoMessage() {}

func (x *UpdatePatientRequest) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePatientRequest.ProtoReflect.Descriptor instead.
func (*UpdatePatientRequest) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{7}
}

func (x *UpdatePatientRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdatePatientRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UpdatePatientRequest) GetDni() string {
	if x != nil {
		return x.Dni
	}
	return ""
}

func (x *UpdatePatientRequest) GetBirthDate() string {
	if x != nil {
		return x.BirthDate
	}
	return ""
}

func (x *UpdatePatientRequest) GetInsurer() string {
	if x != nil {
		return x.Insurer
	}
	return ""
}

func (x *UpdatePatientRequest) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

type UpdatePatientResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Patient       *Patient               `protobuf:"bytes,1,opt,name=patient,proto3" json:"patient,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdatePatientResponse) Reset() {
	*x = UpdatePatientResponse{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdatePatientResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdatePatientResponse) ProtoMessage() {}

func (x *UpdatePatientResponse) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdatePatientResponse.ProtoReflect.Descriptor instead.
func (*UpdatePatientResponse) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{8}
}

func (x *UpdatePatientResponse) GetPatient() *Patient {
	if x != nil {
		return x.Patient
	}
	return nil
}

type DeletePatientRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeletePatientRequest) Reset() {
	*x = DeletePatientRequest{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeletePatientRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeletePatientRequest) ProtoMessage() {}

func (x *DeletePatientRequest) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeletePatientRequest.ProtoReflect.Descriptor instead.
func (*DeletePatientRequest) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{9}
}

func (x *DeletePatientRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeletePatientResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeletePatientResponse) Reset() {
	*x = DeletePatientResponse{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeletePatientResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeletePatientResponse) ProtoMessage() {}

func (x *DeletePatientResponse) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeletePatientResponse.ProtoReflect.Descriptor instead.
func (*DeletePatientResponse) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{10}
}

type History struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Id          string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PatientId   string                 `protobuf:"bytes,2,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	FileName    string                 `protobuf:"bytes,3,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Format      string                 `protobuf:"bytes,4,opt,name=format,proto3" json:"format,omitempty"`
	Status      string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	Fingerprint string                 `protobuf:"bytes,6,opt,name=fingerprint,proto3" json:"fingerprint,omitempty"`
	// draft_json and validated_json carry the record payloads as JSON text
	DraftJson     string `protobuf:"bytes,7,opt,name=draft_json,json=draftJson,proto3" json:"draft_json,omitempty"`
	ValidatedJson string `protobuf:"bytes,8,opt,name=validated_json,json=validatedJson,proto3" json:"validated_json,omitempty"`
	ImportedAt    string `protobuf:"bytes,9,opt,name=imported_at,json=importedAt,proto3" json:"imported_at,omitempty"`
	ValidatedAt   string `protobuf:"bytes,10,opt,name=validated_at,json=validatedAt,proto3" json:"validated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *History) Reset() {
	*x = History{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *History) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*History) ProtoMessage() {}

func (x *History) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use History.ProtoReflect.Descriptor instead.
func (*History) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{11}
}

func (x *History) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *History) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *History) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *History) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *History) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *History) GetFingerprint() string {
	if x != nil {
		return x.Fingerprint
	}
	return ""
}

func (x *History) GetDraftJson() string {
	if x != nil {
		return x.DraftJson
	}
	return ""
}

func (x *History) GetValidatedJson() string {
	if x != nil {
		return x.ValidatedJson
	}
	return ""
}

func (x *History) GetImportedAt() string {
	if x != nil {
		return x.ImportedAt
	}
	return ""
}

func (x *History) GetValidatedAt() string {
	if x != nil {
		return x.ValidatedAt
	}
	return ""
}

type ListHistoriesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PatientId     string                 `protobuf:"bytes,1,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	FromDate      string                 `protobuf:"bytes,3,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,4,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListHistoriesRequest) Reset() {
	*x = ListHistoriesRequest{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListHistoriesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListHistoriesRequest) ProtoMessage() {}

func (x *ListHistoriesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListHistoriesRequest.ProtoReflect.Descriptor instead.
func (*ListHistoriesRequest) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{12}
}

func (x *ListHistoriesRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *ListHistoriesRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListHistoriesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListHistoriesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListHistoriesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Histories     []*History             `protobuf:"bytes,1,rep,name=histories,proto3" json:"histories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListHistoriesResponse) Reset() {
	*x = ListHistoriesResponse{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListHistoriesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListHistoriesResponse) ProtoMessage() {}

func (x *ListHistoriesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListHistoriesResponse.ProtoReflect.Descriptor instead.
func (*ListHistoriesResponse) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{13}
}

func (x *ListHistoriesResponse) GetHistories() []*History {
	if x != nil {
		return x.Histories
	}
	return nil
}

type GetHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetHistoryRequest) Reset() {
	*x = GetHistoryRequest{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetHistoryRequest) ProtoMessage() {}

func (x *GetHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetHistoryRequest.ProtoReflect.Descriptor instead.
func (*GetHistoryRequest) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{14}
}

func (x *GetHistoryRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	History       *History               `protobuf:"bytes,1,opt,name=history,proto3" json:"history,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetHistoryResponse) Reset() {
	*x = GetHistoryResponse{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetHistoryResponse) ProtoMessage() {}

func (x *GetHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetHistoryResponse.ProtoReflect.Descriptor instead.
func (*GetHistoryResponse) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{15}
}

func (x *GetHistoryResponse) GetHistory() *History {
	if x != nil {
		return x.History
	}
	return nil
}

type ValidateHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ValidatedJson string                 `protobuf:"bytes,2,opt,name=validated_json,json=validatedJson,proto3" json:"validated_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateHistoryRequest) Reset() {
	*x = ValidateHistoryRequest{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateHistoryRequest) ProtoMessage() {}

func (x *ValidateHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateHistoryRequest.ProtoReflect.Descriptor instead.
func (*ValidateHistoryRequest) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{16}
}

func (x *ValidateHistoryRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ValidateHistoryRequest) GetValidatedJson() string {
	if x != nil {
		return x.ValidatedJson
	}
	return ""
}

type ValidateHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	History       *History               `protobuf:"bytes,1,opt,name=history,proto3" json:"history,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateHistoryResponse) Reset() {
	*x = ValidateHistoryResponse{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateHistoryResponse) ProtoMessage() {}

func (x *ValidateHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateHistoryResponse.ProtoReflect.Descriptor instead.
func (*ValidateHistoryResponse) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{17}
}

func (x *ValidateHistoryResponse) GetHistory() *History {
	if x != nil {
		return x.History
	}
	return nil
}

type DeleteHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteHistoryRequest) Reset() {
	*x = DeleteHistoryRequest{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteHistoryRequest) ProtoMessage() {}

func (x *DeleteHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteHistoryRequest.ProtoReflect.Descriptor instead.
func (*DeleteHistoryRequest) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{18}
}

func (x *DeleteHistoryRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteHistoryResponse) Reset() {
	*x = DeleteHistoryResponse{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteHistoryResponse) ProtoMessage() {}

func (x *DeleteHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteHistoryResponse.ProtoReflect.Descriptor instead.
func (*DeleteHistoryResponse) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{19}
}

type ImportHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportHistoryRequest) Reset() {
	*x = ImportHistoryRequest{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportHistoryRequest) ProtoMessage() {}

func (x *ImportHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportHistoryRequest.ProtoReflect.Descriptor instead.
func (*ImportHistoryRequest) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{20}
}

func (x *ImportHistoryRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type ImportHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HistoryId     string                 `protobuf:"bytes,1,opt,name=history_id,json=historyId,proto3" json:"history_id,omitempty"`
	PatientId     string                 `protobuf:"bytes,2,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	Deduplicated  bool                   `protobuf:"varint,3,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Fingerprint   string                 `protobuf:"bytes,4,opt,name=fingerprint,proto3" json:"fingerprint,omitempty"`
	Format        string                 `protobuf:"bytes,5,opt,name=format,proto3" json:"format,omitempty"`
	Status        string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	ImportedAt    string                 `protobuf:"bytes,7,opt,name=imported_at,json=importedAt,proto3" json:"imported_at,omitempty"`
	Error         string                 `protobuf:"bytes,8,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportHistoryResponse) Reset() {
	*x = ImportHistoryResponse{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportHistoryResponse) ProtoMessage() {}

func (x *ImportHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportHistoryResponse.ProtoReflect.Descriptor instead.
func (*ImportHistoryResponse) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{21}
}

func (x *ImportHistoryResponse) GetHistoryId() string {
	if x != nil {
		return x.HistoryId
	}
	return ""
}

func (x *ImportHistoryResponse) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *ImportHistoryResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *ImportHistoryResponse) GetFingerprint() string {
	if x != nil {
		return x.Fingerprint
	}
	return ""
}

func (x *ImportHistoryResponse) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *ImportHistoryResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ImportHistoryResponse) GetImportedAt() string {
	if x != nil {
		return x.ImportedAt
	}
	return ""
}

func (x *ImportHistoryResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ImportDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,2,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportDirectoryRequest) Reset() {
	*x = ImportDirectoryRequest{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportDirectoryRequest) ProtoMessage() {}

func (x *ImportDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportDirectoryRequest.ProtoReflect.Descriptor instead.
func (*ImportDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{22}
}

func (x *ImportDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *ImportDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type ImportDirectoryResponse struct {
	state         protoimpl.MessageState   `protogen:"open.v1"`
	Scanned       int64                    `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       int64                    `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     int64                    `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  int64                    `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        int64                    `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*ImportHistoryResponse `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportDirectoryResponse) Reset() {
	*x = ImportDirectoryResponse{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportDirectoryResponse) ProtoMessage() {}

func (x *ImportDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportDirectoryResponse.ProtoReflect.Descriptor instead.
func (*ImportDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{23}
}

func (x *ImportDirectoryResponse) GetScanned() int64 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *ImportDirectoryResponse) GetMatched() int64 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *ImportDirectoryResponse) GetSucceeded() int64 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *ImportDirectoryResponse) GetDeduplicated() int64 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *ImportDirectoryResponse) GetFailed() int64 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *ImportDirectoryResponse) GetResults() []*ImportHistoryResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type GeneralReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GeneralReportRequest) Reset() {
	*x = GeneralReportRequest{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GeneralReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GeneralReportRequest) ProtoMessage() {}

func (x *GeneralReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GeneralReportRequest.ProtoReflect.Descriptor instead.
func (*GeneralReportRequest) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{24}
}

func (x *GeneralReportRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *GeneralReportRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type CountByKey struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Key           string                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Count         int64                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CountByKey) Reset() {
	*x = CountByKey{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CountByKey) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CountByKey) ProtoMessage() {}

func (x *CountByKey) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CountByKey.ProtoReflect.Descriptor instead.
func (*CountByKey) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{25}
}

func (x *CountByKey) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *CountByKey) GetCount() int64 {
	if x != nil {
		return x.Count
	}
	return 0
}

type GeneralReportResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	TotalPatients      int64                  `protobuf:"varint,1,opt,name=total_patients,json=totalPatients,proto3" json:"total_patients,omitempty"`
	TotalHistories     int64                  `protobuf:"varint,2,opt,name=total_histories,json=totalHistories,proto3" json:"total_histories,omitempty"`
	ValidatedHistories int64                  `protobuf:"varint,3,opt,name=validated_histories,json=validatedHistories,proto3" json:"validated_histories,omitempty"`
	TotalRelapses      int64                  `protobuf:"varint,4,opt,name=total_relapses,json=totalRelapses,proto3" json:"total_relapses,omitempty"`
	MeanEdss           float64                `protobuf:"fixed64,5,opt,name=mean_edss,json=meanEdss,proto3" json:"mean_edss,omitempty"`
	NedaPatients       int64                  `protobuf:"varint,6,opt,name=neda_patients,json=nedaPatients,proto3" json:"neda_patients,omitempty"`
	ByForm             []*CountByKey          `protobuf:"bytes,7,rep,name=by_form,json=byForm,proto3" json:"by_form,omitempty"`
	ByInsurer          []*CountByKey          `protobuf:"bytes,8,rep,name=by_insurer,json=byInsurer,proto3" json:"by_insurer,omitempty"`
	ByTherapyPotency   []*CountByKey          `protobuf:"bytes,9,rep,name=by_therapy_potency,json=byTherapyPotency,proto3" json:"by_therapy_potency,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *GeneralReportResponse) Reset() {
	*x = GeneralReportResponse{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GeneralReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GeneralReportResponse) ProtoMessage() {}

func (x *GeneralReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GeneralReportResponse.ProtoReflect.Descriptor instead.
func (*GeneralReportResponse) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{26}
}

func (x *GeneralReportResponse) GetTotalPatients() int64 {
	if x != nil {
		return x.TotalPatients
	}
	return 0
}

func (x *GeneralReportResponse) GetTotalHistories() int64 {
	if x != nil {
		return x.TotalHistories
	}
	return 0
}

func (x *GeneralReportResponse) GetValidatedHistories() int64 {
	if x != nil {
		return x.ValidatedHistories
	}
	return 0
}

func (x *GeneralReportResponse) GetTotalRelapses() int64 {
	if x != nil {
		return x.TotalRelapses
	}
	return 0
}

func (x *GeneralReportResponse) GetMeanEdss() float64 {
	if x != nil {
		return x.MeanEdss
	}
	return 0
}

func (x *GeneralReportResponse) GetNedaPatients() int64 {
	if x != nil {
		return x.NedaPatients
	}
	return 0
}

func (x *GeneralReportResponse) GetByForm() []*CountByKey {
	if x != nil {
		return x.ByForm
	}
	return nil
}

func (x *GeneralReportResponse) GetByInsurer() []*CountByKey {
	if x != nil {
		return x.ByInsurer
	}
	return nil
}

func (x *GeneralReportResponse) GetByTherapyPotency() []*CountByKey {
	if x != nil {
		return x.ByTherapyPotency
	}
	return nil
}

type ExportHistoriesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PatientId     string                 `protobuf:"bytes,1,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	FromDate      string                 `protobuf:"bytes,3,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,4,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportHistoriesRequest) Reset() {
	*x = ExportHistoriesRequest{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportHistoriesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportHistoriesRequest) ProtoMessage() {}

func (x *ExportHistoriesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportHistoriesRequest.ProtoReflect.Descriptor instead.
func (*ExportHistoriesRequest) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{27}
}

func (x *ExportHistoriesRequest) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *ExportHistoriesRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExportHistoriesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportHistoriesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportHistoriesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportHistoriesResponse) Reset() {
	*x = ExportHistoriesResponse{}
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportHistoriesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportHistoriesResponse) ProtoMessage() {}

func (x *ExportHistoriesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_neurosoft_v1_neurosoft_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportHistoriesResponse.ProtoReflect.Descriptor instead.
func (*ExportHistoriesResponse) Descriptor() ([]byte, []int) {
	return file_neurosoft_v1_neurosoft_proto_rawDescGZIP(), []int{28}
}

func (x *ExportHistoriesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_neurosoft_v1_neurosoft_proto protoreflect.FileDescriptor

const file_neurosoft_v1_neurosoft_proto_rawDesc = "" +
	"\n" +
	"\x1cneurosoft/v1/neurosoft.proto\x12\fneurosoft.v1\"\xd3\x01\n" +
	"\aPatient\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x10\n" +
	"\x03dni\x18\x03 \x01(\tR\x03dni\x12\x1d\n" +
	"\n" +
	"birth_date\x18\x04 \x01(\tR\tbirthDate\x12\x18\n" +
	"\ainsurer\x18\x05 \x01(\tR\ainsurer\x12\x1b\n" +
	"\tmember_id\x18\x06 \x01(\tR\bmemberId\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\b \x01(\tR\tupdatedAt\"\x92\x01\n" +
	"\x14CreatePatientRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x10\n" +
	"\x03dni\x18\x02 \x01(\tR\x03dni\x12\x1d\n" +
	"\n" +
	"birth_date\x18\x03 \x01(\tR\tbirthDate\x12\x18\n" +
	"\ainsurer\x18\x04 \x01(\tR\ainsurer\x12\x1b\n" +
	"\tmember_id\x18\x05 \x01(\tR\bmemberId\"H\n" +
	"\x15CreatePatientResponse\x12/\n" +
	"\apatient\x18\x01 \x01(\v2\x15.neurosoft.v1.PatientR\apatient\"#\n" +
	"\x11GetPatientRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"E\n" +
	"\x12GetPatientResponse\x12/\n" +
	"\apatient\x18\x01 \x01(\v2\x15.neurosoft.v1.PatientR\apatient\"\x15\n" +
	"\x13ListPatientsRequest\"I\n" +
	"\x14ListPatientsResponse\x121\n" +
	"\bpatients\x18\x01 \x03(\v2\x15.neurosoft.v1.PatientR\bpatients\"\xa2\x01\n" +
	"\x14UpdatePatientRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x10\n" +
	"\x03dni\x18\x03 \x01(\tR\x03dni\x12\x1d\n" +
	"\n" +
	"birth_date\x18\x04 \x01(\tR\tbirthDate\x12\x18\n" +
	"\ainsurer\x18\x05 \x01(\tR\ainsurer\x12\x1b\n" +
	"\tmember_id\x18\x06 \x01(\tR\bmemberId\"H\n" +
	"\x15UpdatePatientResponse\x12/\n" +
	"\apatient\x18\x01 \x01(\v2\x15.neurosoft.v1.PatientR\apatient\"&\n" +
	"\x14DeletePatientRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x17\n" +
	"\x15DeletePatientResponse\"\xb1\x02\n" +
	"\aHistory\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x02 \x01(\tR\tpatientId\x12\x1b\n" +
	"\tfile_name\x18\x03 \x01(\tR\bfileName\x12\x16\n" +
	"\x06format\x18\x04 \x01(\tR\x06format\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12 \n" +
	"\vfingerprint\x18\x06 \x01(\tR\vfingerprint\x12\x1d\n" +
	"\n" +
	"draft_json\x18\a \x01(\tR\tdraftJson\x12%\n" +
	"\x0evalidated_json\x18\b \x01(\tR\rvalidatedJson\x12\x1f\n" +
	"\vimported_at\x18\t \x01(\tR\n" +
	"importedAt\x12!\n" +
	"\fvalidated_at\x18\n" +
	" \x01(\tR\vvalidatedAt\"\x83\x01\n" +
	"\x14ListHistoriesRequest\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x01 \x01(\tR\tpatientId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1b\n" +
	"\tfrom_date\x18\x03 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x04 \x01(\tR\x06toDate\"L\n" +
	"\x15ListHistoriesResponse\x123\n" +
	"\thistories\x18\x01 \x03(\v2\x15.neurosoft.v1.HistoryR\thistories\"#\n" +
	"\x11GetHistoryRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"E\n" +
	"\x12GetHistoryResponse\x12/\n" +
	"\ahistory\x18\x01 \x01(\v2\x15.neurosoft.v1.HistoryR\ahistory\"O\n" +
	"\x16ValidateHistoryRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12%\n" +
	"\x0evalidated_json\x18\x02 \x01(\tR\rvalidatedJson\"J\n" +
	"\x17ValidateHistoryResponse\x12/\n" +
	"\ahistory\x18\x01 \x01(\v2\x15.neurosoft.v1.HistoryR\ahistory\"&\n" +
	"\x14DeleteHistoryRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x17\n" +
	"\x15DeleteHistoryResponse\"*\n" +
	"\x14ImportHistoryRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"\x82\x02\n" +
	"\x15ImportHistoryResponse\x12\x1d\n" +
	"\n" +
	"history_id\x18\x01 \x01(\tR\thistoryId\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x02 \x01(\tR\tpatientId\x12\"\n" +
	"\fdeduplicated\x18\x03 \x01(\bR\fdeduplicated\x12 \n" +
	"\vfingerprint\x18\x04 \x01(\tR\vfingerprint\x12\x16\n" +
	"\x06format\x18\x05 \x01(\tR\x06format\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12\x1f\n" +
	"\vimported_at\x18\a \x01(\tR\n" +
	"importedAt\x12\x14\n" +
	"\x05error\x18\b \x01(\tR\x05error\"V\n" +
	"\x16ImportDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x02 \x01(\bR\n" +
	"skipHidden\"\xe6\x01\n" +
	"\x17ImportDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\x03R\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\x03R\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\x03R\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\x03R\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\x03R\x06failed\x12=\n" +
	"\aresults\x18\x06 \x03(\v2#.neurosoft.v1.ImportHistoryResponseR\aresults\"L\n" +
	"\x14GeneralReportRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"4\n" +
	"\n" +
	"CountByKey\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x03R\x05count\"\xb5\x03\n" +
	"\x15GeneralReportResponse\x12%\n" +
	"\x0etotal_patients\x18\x01 \x01(\x03R\rtotalPatients\x12'\n" +
	"\x0ftotal_histories\x18\x02 \x01(\x03R\x0etotalHistories\x12/\n" +
	"\x13validated_histories\x18\x03 \x01(\x03R\x12validatedHistories\x12%\n" +
	"\x0etotal_relapses\x18\x04 \x01(\x03R\rtotalRelapses\x12\x1b\n" +
	"\tmean_edss\x18\x05 \x01(\x01R\bmeanEdss\x12#\n" +
	"\rneda_patients\x18\x06 \x01(\x03R\fnedaPatients\x121\n" +
	"\aby_form\x18\a \x03(\v2\x18.neurosoft.v1.CountByKeyR\x06byForm\x127\n" +
	"\n" +
	"by_insurer\x18\b \x03(\v2\x18.neurosoft.v1.CountByKeyR\tbyInsurer\x12F\n" +
	"\x12by_therapy_potency\x18\t \x03(\v2\x18.neurosoft.v1.CountByKeyR\x10byTherapyPotency\"\x85\x01\n" +
	"\x16ExportHistoriesRequest\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x01 \x01(\tR\tpatientId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1b\n" +
	"\tfrom_date\x18\x03 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x04 \x01(\tR\x06toDate\"-\n" +
	"\x17ExportHistoriesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xc7\x03\n" +
	"\x0fPatientsService\x12X\n" +
	"\rCreatePatient\x12\".neurosoft.v1.CreatePatientRequest\x1a#.neurosoft.v1.CreatePatientResponse\x12O\n" +
	"\n" +
	"GetPatient\x12\x1f.neurosoft.v1.GetPatientRequest\x1a .neurosoft.v1.GetPatientResponse\x12U\n" +
	"\fListPatients\x12!.neurosoft.v1.ListPatientsRequest\x1a\".neurosoft.v1.ListPatientsResponse\x12X\n" +
	"\rUpdatePatient\x12\".neurosoft.v1.UpdatePatientRequest\x1a#.neurosoft.v1.UpdatePatientResponse\x12X\n" +
	"\rDeletePatient\x12\".neurosoft.v1.DeletePatientRequest\x1a#.neurosoft.v1.DeletePatientResponse2\xf7\x02\n" +
	"\x10HistoriesService\x12X\n" +
	"\rListHistories\x12\".neurosoft.v1.ListHistoriesRequest\x1a#.neurosoft.v1.ListHistoriesResponse\x12O\n" +
	"\n" +
	"GetHistory\x12\x1f.neurosoft.v1.GetHistoryRequest\x1a .neurosoft.v1.GetHistoryResponse\x12^\n" +
	"\x0fValidateHistory\x12$.neurosoft.v1.ValidateHistoryRequest\x1a%.neurosoft.v1.ValidateHistoryResponse\x12X\n" +
	"\rDeleteHistory\x12\".neurosoft.v1.DeleteHistoryRequest\x1a#.neurosoft.v1.DeleteHistoryResponse2\xc9\x01\n" +
	"\rImportService\x12X\n" +
	"\rImportHistory\x12\".neurosoft.v1.ImportHistoryRequest\x1a#.neurosoft.v1.ImportHistoryResponse\x12^\n" +
	"\x0fImportDirectory\x12$.neurosoft.v1.ImportDirectoryRequest\x1a%.neurosoft.v1.ImportDirectoryResponse2j\n" +
	"\x0eReportsService\x12X\n" +
	"\rGeneralReport\x12\".neurosoft.v1.GeneralReportRequest\x1a#.neurosoft.v1.GeneralReportResponse2o\n" +
	"\rExportService\x12^\n" +
	"\x0fExportHistories\x12$.neurosoft.v1.ExportHistoriesRequest\x1a%.neurosoft.v1.ExportHistoriesResponseB@Z>github.com/ulieet/NeuroSoft/gen/proto/neurosoft/v1;neurosoftpbb\x06proto3"

var (
	file_neurosoft_v1_neurosoft_proto_rawDescOnce sync.Once
	file_neurosoft_v1_neurosoft_proto_rawDescData []byte
)

func file_neurosoft_v1_neurosoft_proto_rawDescGZIP() []byte {
	file_neurosoft_v1_neurosoft_proto_rawDescOnce.Do(func() {
		file_neurosoft_v1_neurosoft_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_neurosoft_v1_neurosoft_proto_rawDesc), len(file_neurosoft_v1_neurosoft_proto_rawDesc)))
	})
	return file_neurosoft_v1_neurosoft_proto_rawDescData
}

var file_neurosoft_v1_neurosoft_proto_msgTypes = make([]protoimpl.MessageInfo, 29)
var file_neurosoft_v1_neurosoft_proto_goTypes = []any{
	(*Patient)(nil),                 // 0: neurosoft.v1.Patient
	(*CreatePatientRequest)(nil),    // 1: neurosoft.v1.CreatePatientRequest
	(*CreatePatientResponse)(nil),   // 2: neurosoft.v1.CreatePatientResponse
	(*GetPatientRequest)(nil),       // 3: neurosoft.v1.GetPatientRequest
	(*GetPatientResponse)(nil),      // 4: neurosoft.v1.GetPatientResponse
	(*ListPatientsRequest)(nil),     // 5: neurosoft.v1.ListPatientsRequest
	(*ListPatientsResponse)(nil),    // 6: neurosoft.v1.ListPatientsResponse
	(*UpdatePatientRequest)(nil),    // 7: neurosoft.v1.UpdatePatientRequest
	(*UpdatePatientResponse)(nil),   // 8: neurosoft.v1.UpdatePatientResponse
	(*DeletePatientRequest)(nil),    // 9: neurosoft.v1.DeletePatientRequest
	(*DeletePatientResponse)(nil),   // 10: neurosoft.v1.DeletePatientResponse
	(*History)(nil),                 // 11: neurosoft.v1.History
	(*ListHistoriesRequest)(nil),    // 12: neurosoft.v1.ListHistoriesRequest
	(*ListHistoriesResponse)(nil),   // 13: neurosoft.v1.ListHistoriesResponse
	(*GetHistoryRequest)(nil),       // 14: neurosoft.v1.GetHistoryRequest
	(*GetHistoryResponse)(nil),      // 15: neurosoft.v1.GetHistoryResponse
	(*ValidateHistoryRequest)(nil),  // 16: neurosoft.v1.ValidateHistoryRequest
	(*ValidateHistoryResponse)(nil), // 17: neurosoft.v1.ValidateHistoryResponse
	(*DeleteHistoryRequest)(nil),    // 18: neurosoft.v1.DeleteHistoryRequest
	(*DeleteHistoryResponse)(nil),   // 19: neurosoft.v1.DeleteHistoryResponse
	(*ImportHistoryRequest)(nil),    // 20: neurosoft.v1.ImportHistoryRequest
	(*ImportHistoryResponse)(nil),   // 21: neurosoft.v1.ImportHistoryResponse
	(*ImportDirectoryRequest)(nil),  // 22: neurosoft.v1.ImportDirectoryRequest
	(*ImportDirectoryResponse)(nil), // 23: neurosoft.v1.ImportDirectoryResponse
	(*GeneralReportRequest)(nil),    // 24: neurosoft.v1.GeneralReportRequest
	(*CountByKey)(nil),              // 25: neurosoft.v1.CountByKey
	(*GeneralReportResponse)(nil),   // 26: neurosoft.v1.GeneralReportResponse
	(*ExportHistoriesRequest)(nil),  // 27: neurosoft.v1.ExportHistoriesRequest
	(*ExportHistoriesResponse)(nil), // 28: neurosoft.v1.ExportHistoriesResponse
}
var file_neurosoft_v1_neurosoft_proto_depIdxs = []int32{
	0,  // 0: neurosoft.v1.CreatePatientResponse.patient:type_name -> neurosoft.v1.Patient
	0,  // 1: neurosoft.v1.GetPatientResponse.patient:type_name -> neurosoft.v1.Patient
	0,  // 2: neurosoft.v1.ListPatientsResponse.patients:type_name -> neurosoft.v1.Patient
	0,  // 3: neurosoft.v1.UpdatePatientResponse.patient:type_name -> neurosoft.v1.Patient
	11, // 4: neurosoft.v1.ListHistoriesResponse.histories:type_name -> neurosoft.v1.History
	11, // 5: neurosoft.v1.GetHistoryResponse.history:type_name -> neurosoft.v1.History
	11, // 6: neurosoft.v1.ValidateHistoryResponse.history:type_name -> neurosoft.v1.History
	21, // 7: neurosoft.v1.ImportDirectoryResponse.results:type_name -> neurosoft.v1.ImportHistoryResponse
	25, // 8: neurosoft.v1.GeneralReportResponse.by_form:type_name -> neurosoft.v1.CountByKey
	25, // 9: neurosoft.v1.GeneralReportResponse.by_insurer:type_name -> neurosoft.v1.CountByKey
	25, // 10: neurosoft.v1.GeneralReportResponse.by_therapy_potency:type_name -> neurosoft.v1.CountByKey
	1,  // 11: neurosoft.v1.PatientsService.CreatePatient:input_type -> neurosoft.v1.CreatePatientRequest
	3,  // 12: neurosoft.v1.PatientsService.GetPatient:input_type -> neurosoft.v1.GetPatientRequest
	5,  // 13: neurosoft.v1.PatientsService.ListPatients:input_type -> neurosoft.v1.ListPatientsRequest
	7,  // 14: neurosoft.v1.PatientsService.UpdatePatient:input_type -> neurosoft.v1.UpdatePatientRequest
	9,  // 15: neurosoft.v1.PatientsService.DeletePatient:input_type -> neurosoft.v1.DeletePatientRequest
	12, // 16: neurosoft.v1.HistoriesService.ListHistories:input_type -> neurosoft.v1.ListHistoriesRequest
	14, // 17: neurosoft.v1.HistoriesService.GetHistory:input_type -> neurosoft.v1.GetHistoryRequest
	16, // 18: neurosoft.v1.HistoriesService.ValidateHistory:input_type -> neurosoft.v1.ValidateHistoryRequest
	18, // 19: neurosoft.v1.HistoriesService.DeleteHistory:input_type -> neurosoft.v1.DeleteHistoryRequest
	20, // 20: neurosoft.v1.ImportService.ImportHistory:input_type -> neurosoft.v1.ImportHistoryRequest
	22, // 21: neurosoft.v1.ImportService.ImportDirectory:input_type -> neurosoft.v1.ImportDirectoryRequest
	24, // 22: neurosoft.v1.ReportsService.GeneralReport:input_type -> neurosoft.v1.GeneralReportRequest
	27, // 23: neurosoft.v1.ExportService.ExportHistories:input_type -> neurosoft.v1.ExportHistoriesRequest
	2,  // 24: neurosoft.v1.PatientsService.CreatePatient:output_type -> neurosoft.v1.CreatePatientResponse
	4,  // 25: neurosoft.v1.PatientsService.GetPatient:output_type -> neurosoft.v1.GetPatientResponse
	6,  // 26: neurosoft.v1.PatientsService.ListPatients:output_type -> neurosoft.v1.ListPatientsResponse
	8,  // 27: neurosoft.v1.PatientsService.UpdatePatient:output_type -> neurosoft.v1.UpdatePatientResponse
	10, // 28: neurosoft.v1.PatientsService.DeletePatient:output_type -> neurosoft.v1.DeletePatientResponse
	13, // 29: neurosoft.v1.HistoriesService.ListHistories:output_type -> neurosoft.v1.ListHistoriesResponse
	15, // 30: neurosoft.v1.HistoriesService.GetHistory:output_type -> neurosoft.v1.GetHistoryResponse
	17, // 31: neurosoft.v1.HistoriesService.ValidateHistory:output_type -> neurosoft.v1.ValidateHistoryResponse
	19, // 32: neurosoft.v1.HistoriesService.DeleteHistory:output_type -> neurosoft.v1.DeleteHistoryResponse
	21, // 33: neurosoft.v1.ImportService.ImportHistory:output_type -> neurosoft.v1.ImportHistoryResponse
	23, // 34: neurosoft.v1.ImportService.ImportDirectory:output_type -> neurosoft.v1.ImportDirectoryResponse
	26, // 35: neurosoft.v1.ReportsService.GeneralReport:output_type -> neurosoft.v1.GeneralReportResponse
	28, // 36: neurosoft.v1.ExportService.ExportHistories:output_type -> neurosoft.v1.ExportHistoriesResponse
	24, // [24:37] is the sub-list for method output_type
	11, // [11:24] is the sub-list for method input_type
	11, // [11:11] is the sub-list for extension type_name
	11, // [11:11] is the sub-list for extension extendee
	0,  // [0:11] is the sub-list for field type_name
}

func init() { file_neurosoft_v1_neurosoft_proto_init() }
func file_neurosoft_v1_neurosoft_proto_init() {
	if File_neurosoft_v1_neurosoft_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_neurosoft_v1_neurosoft_proto_rawDesc), len(file_neurosoft_v1_neurosoft_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   29,
			NumExtensions: 0,
			NumServices:   5,
		},
		GoTypes:           file_neurosoft_v1_neurosoft_proto_goTypes,
		DependencyIndexes: file_neurosoft_v1_neurosoft_proto_depIdxs,
		MessageInfos:      file_neurosoft_v1_neurosoft_proto_msgTypes,
	}.Build()
	File_neurosoft_v1_neurosoft_proto = out.File
	file_neurosoft_v1_neurosoft_proto_goTypes = nil
	file_neurosoft_v1_neurosoft_proto_depIdxs = nil
}
