// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: notices/v1/notices.proto

package noticesv1

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

type BulletinFormat int32

const (
	BulletinFormat_BULLETIN_FORMAT_TEXT_UNSPECIFIED BulletinFormat = 0
	BulletinFormat_BULLETIN_FORMAT_XLSX             BulletinFormat = 1
)

// Enum value maps for BulletinFormat.
var (
	BulletinFormat_name = map[int32]string{
		0: "BULLETIN_FORMAT_TEXT_UNSPECIFIED",
		1: "BULLETIN_FORMAT_XLSX",
	}
	BulletinFormat_value = map[string]int32{
		"BULLETIN_FORMAT_TEXT_UNSPECIFIED": 0,
		"BULLETIN_FORMAT_XLSX":             1,
	}
)

func (x BulletinFormat) Enum() *BulletinFormat {
	p := new(BulletinFormat)
	*p = x
	return p
}

func (x BulletinFormat) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (BulletinFormat) Descriptor() protoreflect.EnumDescriptor {
	return file_notices_v1_notices_proto_enumTypes[0].Descriptor()
}

func (BulletinFormat) Type() protoreflect.EnumType {
	return &file_notices_v1_notices_proto_enumTypes[0]
}

func (x BulletinFormat) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use BulletinFormat.Descriptor instead.
func (BulletinFormat) EnumDescriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{0}
}

type Notice struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	NoticeNumber  int32                  `protobuf:"varint,2,opt,name=notice_number,json=noticeNumber,proto3" json:"notice_number,omitempty"`
	GazetteNumber int32                  `protobuf:"varint,3,opt,name=gazette_number,json=gazetteNumber,proto3" json:"gazette_number,omitempty"`
	// YYYY-MM-DD
	PublicationDate string `protobuf:"bytes,4,opt,name=publication_date,json=publicationDate,proto3" json:"publication_date,omitempty"`
	MajorType       string `protobuf:"bytes,5,opt,name=major_type,json=majorType,proto3" json:"major_type,omitempty"`
	MinorType       string `protobuf:"bytes,6,opt,name=minor_type,json=minorType,proto3" json:"minor_type,omitempty"`
	// 0 when the page could not be recovered.
	Page          int32  `protobuf:"varint,7,opt,name=page,proto3" json:"page,omitempty"`
	Issn          string `protobuf:"bytes,8,opt,name=issn,proto3" json:"issn,omitempty"`
	Description   string `protobuf:"bytes,9,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Notice) Reset() {
	*x = Notice{}
	mi := &file_notices_v1_notices_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Notice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Notice) ProtoMessage() {}

func (x *Notice) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Notice.ProtoReflect.Descriptor instead.
func (*Notice) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{0}
}

func (x *Notice) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Notice) GetNoticeNumber() int32 {
	if x != nil {
		return x.NoticeNumber
	}
	return 0
}

func (x *Notice) GetGazetteNumber() int32 {
	if x != nil {
		return x.GazetteNumber
	}
	return 0
}

func (x *Notice) GetPublicationDate() string {
	if x != nil {
		return x.PublicationDate
	}
	return ""
}

func (x *Notice) GetMajorType() string {
	if x != nil {
		return x.MajorType
	}
	return ""
}

func (x *Notice) GetMinorType() string {
	if x != nil {
		return x.MinorType
	}
	return ""
}

func (x *Notice) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *Notice) GetIssn() string {
	if x != nil {
		return x.Issn
	}
	return ""
}

func (x *Notice) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type IngestGazetteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestGazetteRequest) Reset() {
	*x = IngestGazetteRequest{}
	mi := &file_notices_v1_notices_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestGazetteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestGazetteRequest) ProtoMessage() {}

func (x *IngestGazetteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestGazetteRequest.ProtoReflect.Descriptor instead.
func (*IngestGazetteRequest) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{1}
}

func (x *IngestGazetteRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	GazetteId      string                 `protobuf:"bytes,1,opt,name=gazette_id,json=gazetteId,proto3" json:"gazette_id,omitempty"`
	GazetteNumber  int32                  `protobuf:"varint,2,opt,name=gazette_number,json=gazetteNumber,proto3" json:"gazette_number,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,3,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,4,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	IngestedAt     string                 `protobuf:"bytes,5,opt,name=ingested_at,json=ingestedAt,proto3" json:"ingested_at,omitempty"`
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	NoticeNumbers  []int32                `protobuf:"varint,7,rep,packed,name=notice_numbers,json=noticeNumbers,proto3" json:"notice_numbers,omitempty"`
	Error          string                 `protobuf:"bytes,8,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_notices_v1_notices_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{2}
}

func (x *IngestResponse) GetGazetteId() string {
	if x != nil {
		return x.GazetteId
	}
	return ""
}

func (x *IngestResponse) GetGazetteNumber() int32 {
	if x != nil {
		return x.GazetteNumber
	}
	return 0
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetIngestedAt() string {
	if x != nil {
		return x.IngestedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetNoticeNumbers() []int32 {
	if x != nil {
		return x.NoticeNumbers
	}
	return nil
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    *bool                  `protobuf:"varint,2,opt,name=skip_hidden,json=skipHidden,proto3,oneof" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_notices_v1_notices_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{3}
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil && x.SkipHidden != nil {
		return *x.SkipHidden
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_notices_v1_notices_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{4}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type ExtractNoticesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GazetteNumber int32                  `protobuf:"varint,1,opt,name=gazette_number,json=gazetteNumber,proto3" json:"gazette_number,omitempty"`
	// Must be non-empty; the caller supplies the annotated notice numbers.
	NoticeNumbers []int32 `protobuf:"varint,2,rep,packed,name=notice_numbers,json=noticeNumbers,proto3" json:"notice_numbers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractNoticesRequest) Reset() {
	*x = ExtractNoticesRequest{}
	mi := &file_notices_v1_notices_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractNoticesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractNoticesRequest) ProtoMessage() {}

func (x *ExtractNoticesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractNoticesRequest.ProtoReflect.Descriptor instead.
func (*ExtractNoticesRequest) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{5}
}

func (x *ExtractNoticesRequest) GetGazetteNumber() int32 {
	if x != nil {
		return x.GazetteNumber
	}
	return 0
}

func (x *ExtractNoticesRequest) GetNoticeNumbers() []int32 {
	if x != nil {
		return x.NoticeNumbers
	}
	return nil
}

type ExtractIssue struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GazetteNumber int32                  `protobuf:"varint,1,opt,name=gazette_number,json=gazetteNumber,proto3" json:"gazette_number,omitempty"`
	NoticeNumber  int32                  `protobuf:"varint,2,opt,name=notice_number,json=noticeNumber,proto3" json:"notice_number,omitempty"`
	Reason        string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractIssue) Reset() {
	*x = ExtractIssue{}
	mi := &file_notices_v1_notices_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractIssue) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractIssue) ProtoMessage() {}

func (x *ExtractIssue) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractIssue.ProtoReflect.Descriptor instead.
func (*ExtractIssue) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{6}
}

func (x *ExtractIssue) GetGazetteNumber() int32 {
	if x != nil {
		return x.GazetteNumber
	}
	return 0
}

func (x *ExtractIssue) GetNoticeNumber() int32 {
	if x != nil {
		return x.NoticeNumber
	}
	return 0
}

func (x *ExtractIssue) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type ExtractNoticesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Notices       []*Notice              `protobuf:"bytes,2,rep,name=notices,proto3" json:"notices,omitempty"`
	Issues        []*ExtractIssue        `protobuf:"bytes,3,rep,name=issues,proto3" json:"issues,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractNoticesResponse) Reset() {
	*x = ExtractNoticesResponse{}
	mi := &file_notices_v1_notices_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractNoticesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractNoticesResponse) ProtoMessage() {}

func (x *ExtractNoticesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractNoticesResponse.ProtoReflect.Descriptor instead.
func (*ExtractNoticesResponse) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{7}
}

func (x *ExtractNoticesResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ExtractNoticesResponse) GetNotices() []*Notice {
	if x != nil {
		return x.Notices
	}
	return nil
}

func (x *ExtractNoticesResponse) GetIssues() []*ExtractIssue {
	if x != nil {
		return x.Issues
	}
	return nil
}

type GetNoticeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GazetteNumber int32                  `protobuf:"varint,1,opt,name=gazette_number,json=gazetteNumber,proto3" json:"gazette_number,omitempty"`
	NoticeNumber  int32                  `protobuf:"varint,2,opt,name=notice_number,json=noticeNumber,proto3" json:"notice_number,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetNoticeRequest) Reset() {
	*x = GetNoticeRequest{}
	mi := &file_notices_v1_notices_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetNoticeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetNoticeRequest) ProtoMessage() {}

func (x *GetNoticeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetNoticeRequest.ProtoReflect.Descriptor instead.
func (*GetNoticeRequest) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{8}
}

func (x *GetNoticeRequest) GetGazetteNumber() int32 {
	if x != nil {
		return x.GazetteNumber
	}
	return 0
}

func (x *GetNoticeRequest) GetNoticeNumber() int32 {
	if x != nil {
		return x.NoticeNumber
	}
	return 0
}

type GetNoticeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Notice        *Notice                `protobuf:"bytes,1,opt,name=notice,proto3" json:"notice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetNoticeResponse) Reset() {
	*x = GetNoticeResponse{}
	mi := &file_notices_v1_notices_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetNoticeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetNoticeResponse) ProtoMessage() {}

func (x *GetNoticeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetNoticeResponse.ProtoReflect.Descriptor instead.
func (*GetNoticeResponse) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{9}
}

func (x *GetNoticeResponse) GetNotice() *Notice {
	if x != nil {
		return x.Notice
	}
	return nil
}

type ListNoticesRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Inclusive publication-date bounds, YYYY-MM-DD. Both optional.
	FromDate      string `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListNoticesRequest) Reset() {
	*x = ListNoticesRequest{}
	mi := &file_notices_v1_notices_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListNoticesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListNoticesRequest) ProtoMessage() {}

func (x *ListNoticesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListNoticesRequest.ProtoReflect.Descriptor instead.
func (*ListNoticesRequest) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{10}
}

func (x *ListNoticesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListNoticesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListNoticesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Notices       []*Notice              `protobuf:"bytes,1,rep,name=notices,proto3" json:"notices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListNoticesResponse) Reset() {
	*x = ListNoticesResponse{}
	mi := &file_notices_v1_notices_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListNoticesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListNoticesResponse) ProtoMessage() {}

func (x *ListNoticesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListNoticesResponse.ProtoReflect.Descriptor instead.
func (*ListNoticesResponse) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{11}
}

func (x *ListNoticesResponse) GetNotices() []*Notice {
	if x != nil {
		return x.Notices
	}
	return nil
}

type GenerateBulletinRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	BulletinNumber int32                  `protobuf:"varint,1,opt,name=bulletin_number,json=bulletinNumber,proto3" json:"bulletin_number,omitempty"`
	// Inclusive week bounds, YYYY-MM-DD.
	FromDate      string         `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string         `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	Format        BulletinFormat `protobuf:"varint,4,opt,name=format,proto3,enum=notices.v1.BulletinFormat" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateBulletinRequest) Reset() {
	*x = GenerateBulletinRequest{}
	mi := &file_notices_v1_notices_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateBulletinRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateBulletinRequest) ProtoMessage() {}

func (x *GenerateBulletinRequest) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateBulletinRequest.ProtoReflect.Descriptor instead.
func (*GenerateBulletinRequest) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{12}
}

func (x *GenerateBulletinRequest) GetBulletinNumber() int32 {
	if x != nil {
		return x.BulletinNumber
	}
	return 0
}

func (x *GenerateBulletinRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *GenerateBulletinRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *GenerateBulletinRequest) GetFormat() BulletinFormat {
	if x != nil {
		return x.Format
	}
	return BulletinFormat_BULLETIN_FORMAT_TEXT_UNSPECIFIED
}

type GenerateBulletinResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Xlsx          []byte                 `protobuf:"bytes,2,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateBulletinResponse) Reset() {
	*x = GenerateBulletinResponse{}
	mi := &file_notices_v1_notices_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateBulletinResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateBulletinResponse) ProtoMessage() {}

func (x *GenerateBulletinResponse) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateBulletinResponse.ProtoReflect.Descriptor instead.
func (*GenerateBulletinResponse) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{13}
}

func (x *GenerateBulletinResponse) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *GenerateBulletinResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_notices_v1_notices_proto protoreflect.FileDescriptor

const file_notices_v1_notices_proto_rawDesc = "" +
	"\n" +
	"\x18notices/v1/notices.proto\x12\n" +
	"notices.v1\"\x97\x02\n" +
	"\x06Notice\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12#\n" +
	"\rnotice_number\x18\x02 \x01(\x05R\fnoticeNumber\x12%\n" +
	"\x0egazette_number\x18\x03 \x01(\x05R\rgazetteNumber\x12)\n" +
	"\x10publication_date\x18\x04 \x01(\tR\x0fpublicationDate\x12\x1d\n" +
	"\n" +
	"major_type\x18\x05 \x01(\tR\tmajorType\x12\x1d\n" +
	"\n" +
	"minor_type\x18\x06 \x01(\tR\tminorType\x12\x12\n" +
	"\x04page\x18\a \x01(\x05R\x04page\x12\x12\n" +
	"\x04issn\x18\b \x01(\tR\x04issn\x12 \n" +
	"\vdescription\x18\t \x01(\tR\vdescription\"*\n" +
	"\x14IngestGazetteRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"\xa3\x02\n" +
	"\x0eIngestResponse\x12\x1d\n" +
	"\n" +
	"gazette_id\x18\x01 \x01(\tR\tgazetteId\x12%\n" +
	"\x0egazette_number\x18\x02 \x01(\x05R\rgazetteNumber\x12\"\n" +
	"\fdeduplicated\x18\x03 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x04 \x01(\tR\x0econtentHashHex\x12\x1f\n" +
	"\vingested_at\x18\x05 \x01(\tR\n" +
	"ingestedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12%\n" +
	"\x0enotice_numbers\x18\a \x03(\x05R\rnoticeNumbers\x12\x14\n" +
	"\x05error\x18\b \x01(\tR\x05error\"k\n" +
	"\x16IngestDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12$\n" +
	"\vskip_hidden\x18\x02 \x01(\bH\x00R\n" +
	"skipHidden\x88\x01\x01B\x0e\n" +
	"\f_skip_hidden\"\xdd\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x124\n" +
	"\aresults\x18\x06 \x03(\v2\x1a.notices.v1.IngestResponseR\aresults\"e\n" +
	"\x15ExtractNoticesRequest\x12%\n" +
	"\x0egazette_number\x18\x01 \x01(\x05R\rgazetteNumber\x12%\n" +
	"\x0enotice_numbers\x18\x02 \x03(\x05R\rnoticeNumbers\"r\n" +
	"\fExtractIssue\x12%\n" +
	"\x0egazette_number\x18\x01 \x01(\x05R\rgazetteNumber\x12#\n" +
	"\rnotice_number\x18\x02 \x01(\x05R\fnoticeNumber\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\"\x8f\x01\n" +
	"\x16ExtractNoticesResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12,\n" +
	"\anotices\x18\x02 \x03(\v2\x12.notices.v1.NoticeR\anotices\x120\n" +
	"\x06issues\x18\x03 \x03(\v2\x18.notices.v1.ExtractIssueR\x06issues\"^\n" +
	"\x10GetNoticeRequest\x12%\n" +
	"\x0egazette_number\x18\x01 \x01(\x05R\rgazetteNumber\x12#\n" +
	"\rnotice_number\x18\x02 \x01(\x05R\fnoticeNumber\"?\n" +
	"\x11GetNoticeResponse\x12*\n" +
	"\x06notice\x18\x01 \x01(\v2\x12.notices.v1.NoticeR\x06notice\"J\n" +
	"\x12ListNoticesRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"C\n" +
	"\x13ListNoticesResponse\x12,\n" +
	"\anotices\x18\x01 \x03(\v2\x12.notices.v1.NoticeR\anotices\"\xac\x01\n" +
	"\x17GenerateBulletinRequest\x12'\n" +
	"\x0fbulletin_number\x18\x01 \x01(\x05R\x0ebulletinNumber\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\x122\n" +
	"\x06format\x18\x04 \x01(\x0e2\x1a.notices.v1.BulletinFormatR\x06format\"B\n" +
	"\x18GenerateBulletinResponse\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x12\n" +
	"\x04xlsx\x18\x02 \x01(\fR\x04xlsx*P\n" +
	"\x0eBulletinFormat\x12$\n" +
	" BULLETIN_FORMAT_TEXT_UNSPECIFIED\x10\x00\x12\x18\n" +
	"\x14BULLETIN_FORMAT_XLSX\x10\x012\xbd\x01\n" +
	"\x10IngestionService\x12M\n" +
	"\rIngestGazette\x12 .notices.v1.IngestGazetteRequest\x1a\x1a.notices.v1.IngestResponse\x12Z\n" +
	"\x0fIngestDirectory\x12\".notices.v1.IngestDirectoryRequest\x1a#.notices.v1.IngestDirectoryResponse2\x83\x02\n" +
	"\x0eNoticesService\x12W\n" +
	"\x0eExtractNotices\x12!.notices.v1.ExtractNoticesRequest\x1a\".notices.v1.ExtractNoticesResponse\x12H\n" +
	"\tGetNotice\x12\x1c.notices.v1.GetNoticeRequest\x1a\x1d.notices.v1.GetNoticeResponse\x12N\n" +
	"\vListNotices\x12\x1e.notices.v1.ListNoticesRequest\x1a\x1f.notices.v1.ListNoticesResponse2p\n" +
	"\x0fBulletinService\x12]\n" +
	"\x10GenerateBulletin\x12#.notices.v1.GenerateBulletinRequest\x1a$.notices.v1.GenerateBulletinResponseBKZIgithub.com/weekly-statutes/gazette-tracker/gen/proto/notices/v1;noticesv1b\x06proto3"

var (
	file_notices_v1_notices_proto_rawDescOnce sync.Once
	file_notices_v1_notices_proto_rawDescData []byte
)

func file_notices_v1_notices_proto_rawDescGZIP() []byte {
	file_notices_v1_notices_proto_rawDescOnce.Do(func() {
		file_notices_v1_notices_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_notices_v1_notices_proto_rawDesc), len(file_notices_v1_notices_proto_rawDesc)))
	})
	return file_notices_v1_notices_proto_rawDescData
}

var file_notices_v1_notices_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_notices_v1_notices_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_notices_v1_notices_proto_goTypes = []any{
	(BulletinFormat)(0),              // 0: notices.v1.BulletinFormat
	(*Notice)(nil),                   // 1: notices.v1.Notice
	(*IngestGazetteRequest)(nil),     // 2: notices.v1.IngestGazetteRequest
	(*IngestResponse)(nil),           // 3: notices.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),   // 4: notices.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil),  // 5: notices.v1.IngestDirectoryResponse
	(*ExtractNoticesRequest)(nil),    // 6: notices.v1.ExtractNoticesRequest
	(*ExtractIssue)(nil),             // 7: notices.v1.ExtractIssue
	(*ExtractNoticesResponse)(nil),   // 8: notices.v1.ExtractNoticesResponse
	(*GetNoticeRequest)(nil),         // 9: notices.v1.GetNoticeRequest
	(*GetNoticeResponse)(nil),        // 10: notices.v1.GetNoticeResponse
	(*ListNoticesRequest)(nil),       // 11: notices.v1.ListNoticesRequest
	(*ListNoticesResponse)(nil),      // 12: notices.v1.ListNoticesResponse
	(*GenerateBulletinRequest)(nil),  // 13: notices.v1.GenerateBulletinRequest
	(*GenerateBulletinResponse)(nil), // 14: notices.v1.GenerateBulletinResponse
}
var file_notices_v1_notices_proto_depIdxs = []int32{
	3,  // 0: notices.v1.IngestDirectoryResponse.results:type_name -> notices.v1.IngestResponse
	1,  // 1: notices.v1.ExtractNoticesResponse.notices:type_name -> notices.v1.Notice
	7,  // 2: notices.v1.ExtractNoticesResponse.issues:type_name -> notices.v1.ExtractIssue
	1,  // 3: notices.v1.GetNoticeResponse.notice:type_name -> notices.v1.Notice
	1,  // 4: notices.v1.ListNoticesResponse.notices:type_name -> notices.v1.Notice
	0,  // 5: notices.v1.GenerateBulletinRequest.format:type_name -> notices.v1.BulletinFormat
	2,  // 6: notices.v1.IngestionService.IngestGazette:input_type -> notices.v1.IngestGazetteRequest
	4,  // 7: notices.v1.IngestionService.IngestDirectory:input_type -> notices.v1.IngestDirectoryRequest
	6,  // 8: notices.v1.NoticesService.ExtractNotices:input_type -> notices.v1.ExtractNoticesRequest
	9,  // 9: notices.v1.NoticesService.GetNotice:input_type -> notices.v1.GetNoticeRequest
	11, // 10: notices.v1.NoticesService.ListNotices:input_type -> notices.v1.ListNoticesRequest
	13, // 11: notices.v1.BulletinService.GenerateBulletin:input_type -> notices.v1.GenerateBulletinRequest
	3,  // 12: notices.v1.IngestionService.IngestGazette:output_type -> notices.v1.IngestResponse
	5,  // 13: notices.v1.IngestionService.IngestDirectory:output_type -> notices.v1.IngestDirectoryResponse
	8,  // 14: notices.v1.NoticesService.ExtractNotices:output_type -> notices.v1.ExtractNoticesResponse
	10, // 15: notices.v1.NoticesService.GetNotice:output_type -> notices.v1.GetNoticeResponse
	12, // 16: notices.v1.NoticesService.ListNotices:output_type -> notices.v1.ListNoticesResponse
	14, // 17: notices.v1.BulletinService.GenerateBulletin:output_type -> notices.v1.GenerateBulletinResponse
	12, // [12:18] is the sub-list for method output_type
	6,  // [6:12] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_notices_v1_notices_proto_init() }
func file_notices_v1_notices_proto_init() {
	if File_notices_v1_notices_proto != nil {
		return
	}
	file_notices_v1_notices_proto_msgTypes[3].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_notices_v1_notices_proto_rawDesc), len(file_notices_v1_notices_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_notices_v1_notices_proto_goTypes,
		DependencyIndexes: file_notices_v1_notices_proto_depIdxs,
		EnumInfos:         file_notices_v1_notices_proto_enumTypes,
		MessageInfos:      file_notices_v1_notices_proto_msgTypes,
	}.Build()
	File_notices_v1_notices_proto = out.File
	file_notices_v1_notices_proto_goTypes = nil
	file_notices_v1_notices_proto_depIdxs = nil
}
