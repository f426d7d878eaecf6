// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: notices/v1/notices.proto

package noticesv1

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
	IngestionService_IngestGazette_FullMethodName   = "/notices.v1.IngestionService/IngestGazette"
	IngestionService_IngestDirectory_FullMethodName = "/notices.v1.IngestionService/IngestDirectory"
)

// IngestionServiceClient is the client API for IngestionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type IngestionServiceClient interface {
	IngestGazette(ctx context.Context, in *IngestGazetteRequest, opts ...grpc.CallOption) (*IngestResponse, error)
	IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error)
}

type ingestionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIngestionServiceClient(cc grpc.ClientConnInterface) IngestionServiceClient {
	return &ingestionServiceClient{cc}
}

func (c *ingestionServiceClient) IngestGazette(ctx context.Context, in *IngestGazetteRequest, opts ...grpc.CallOption) (*IngestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestResponse)
	err := c.cc.Invoke(ctx, IngestionService_IngestGazette_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestDirectoryResponse)
	err := c.cc.Invoke(ctx, IngestionService_IngestDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IngestionServiceServer is the server API for IngestionService service.
// All implementations must embed UnimplementedIngestionServiceServer
// for forward compatibility.
type IngestionServiceServer interface {
	IngestGazette(context.Context, *IngestGazetteRequest) (*IngestResponse, error)
	IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error)
	mustEmbedUnimplementedIngestionServiceServer()
}

// UnimplementedIngestionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedIngestionServiceServer struct{}

func (UnimplementedIngestionServiceServer) IngestGazette(context.Context, *IngestGazetteRequest) (*IngestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestGazette not implemented")
}
func (UnimplementedIngestionServiceServer) IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestDirectory not implemented")
}
func (UnimplementedIngestionServiceServer) mustEmbedUnimplementedIngestionServiceServer() {}
func (UnimplementedIngestionServiceServer) testEmbeddedByValue()                          {}

// UnsafeIngestionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to IngestionServiceServer will
// result in compilation errors.
type UnsafeIngestionServiceServer interface {
	mustEmbedUnimplementedIngestionServiceServer()
}

func RegisterIngestionServiceServer(s grpc.ServiceRegistrar, srv IngestionServiceServer) {
	// If the following call pancis, it indicates UnimplementedIngestionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&IngestionService_ServiceDesc, srv)
}

func _IngestionService_IngestGazette_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestGazetteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).IngestGazette(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_IngestGazette_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).IngestGazette(ctx, req.(*IngestGazetteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_IngestDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).IngestDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_IngestDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).IngestDirectory(ctx, req.(*IngestDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// IngestionService_ServiceDesc is the grpc.ServiceDesc for IngestionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var IngestionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "notices.v1.IngestionService",
	HandlerType: (*IngestionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IngestGazette",
			Handler:    _IngestionService_IngestGazette_Handler,
		},
		{
			MethodName: "IngestDirectory",
			Handler:    _IngestionService_IngestDirectory_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "notices/v1/notices.proto",
}

const (
	NoticesService_ExtractNotices_FullMethodName = "/notices.v1.NoticesService/ExtractNotices"
	NoticesService_GetNotice_FullMethodName      = "/notices.v1.NoticesService/GetNotice"
	NoticesService_ListNotices_FullMethodName    = "/notices.v1.NoticesService/ListNotices"
)

// NoticesServiceClient is the client API for NoticesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type NoticesServiceClient interface {
	ExtractNotices(ctx context.Context, in *ExtractNoticesRequest, opts ...grpc.CallOption) (*ExtractNoticesResponse, error)
	GetNotice(ctx context.Context, in *GetNoticeRequest, opts ...grpc.CallOption) (*GetNoticeResponse, error)
	ListNotices(ctx context.Context, in *ListNoticesRequest, opts ...grpc.CallOption) (*ListNoticesResponse, error)
}

type noticesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewNoticesServiceClient(cc grpc.ClientConnInterface) NoticesServiceClient {
	return &noticesServiceClient{cc}
}

func (c *noticesServiceClient) ExtractNotices(ctx context.Context, in *ExtractNoticesRequest, opts ...grpc.CallOption) (*ExtractNoticesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractNoticesResponse)
	err := c.cc.Invoke(ctx, NoticesService_ExtractNotices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *noticesServiceClient) GetNotice(ctx context.Context, in *GetNoticeRequest, opts ...grpc.CallOption) (*GetNoticeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetNoticeResponse)
	err := c.cc.Invoke(ctx, NoticesService_GetNotice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *noticesServiceClient) ListNotices(ctx context.Context, in *ListNoticesRequest, opts ...grpc.CallOption) (*ListNoticesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListNoticesResponse)
	err := c.cc.Invoke(ctx, NoticesService_ListNotices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// NoticesServiceServer is the server API for NoticesService service.
// All implementations must embed UnimplementedNoticesServiceServer
// for forward compatibility.
type NoticesServiceServer interface {
	ExtractNotices(context.Context, *ExtractNoticesRequest) (*ExtractNoticesResponse, error)
	GetNotice(context.Context, *GetNoticeRequest) (*GetNoticeResponse, error)
	ListNotices(context.Context, *ListNoticesRequest) (*ListNoticesResponse, error)
	mustEmbedUnimplementedNoticesServiceServer()
}

// UnimplementedNoticesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedNoticesServiceServer struct{}

func (UnimplementedNoticesServiceServer) ExtractNotices(context.Context, *ExtractNoticesRequest) (*ExtractNoticesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractNotices not implemented")
}
func (UnimplementedNoticesServiceServer) GetNotice(context.Context, *GetNoticeRequest) (*GetNoticeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetNotice not implemented")
}
func (UnimplementedNoticesServiceServer) ListNotices(context.Context, *ListNoticesRequest) (*ListNoticesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListNotices not implemented")
}
func (UnimplementedNoticesServiceServer) mustEmbedUnimplementedNoticesServiceServer() {}
func (UnimplementedNoticesServiceServer) testEmbeddedByValue()                        {}

// UnsafeNoticesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to NoticesServiceServer will
// result in compilation errors.
type UnsafeNoticesServiceServer interface {
	mustEmbedUnimplementedNoticesServiceServer()
}

func RegisterNoticesServiceServer(s grpc.ServiceRegistrar, srv NoticesServiceServer) {
	// If the following call pancis, it indicates UnimplementedNoticesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&NoticesService_ServiceDesc, srv)
}

func _NoticesService_ExtractNotices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractNoticesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NoticesServiceServer).ExtractNotices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NoticesService_ExtractNotices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NoticesServiceServer).ExtractNotices(ctx, req.(*ExtractNoticesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NoticesService_GetNotice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetNoticeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NoticesServiceServer).GetNotice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NoticesService_GetNotice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NoticesServiceServer).GetNotice(ctx, req.(*GetNoticeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NoticesService_ListNotices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListNoticesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NoticesServiceServer).ListNotices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NoticesService_ListNotices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NoticesServiceServer).ListNotices(ctx, req.(*ListNoticesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// NoticesService_ServiceDesc is the grpc.ServiceDesc for NoticesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var NoticesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "notices.v1.NoticesService",
	HandlerType: (*NoticesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExtractNotices",
			Handler:    _NoticesService_ExtractNotices_Handler,
		},
		{
			MethodName: "GetNotice",
			Handler:    _NoticesService_GetNotice_Handler,
		},
		{
			MethodName: "ListNotices",
			Handler:    _NoticesService_ListNotices_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "notices/v1/notices.proto",
}

const (
	BulletinService_GenerateBulletin_FullMethodName = "/notices.v1.BulletinService/GenerateBulletin"
)

// BulletinServiceClient is the client API for BulletinService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type BulletinServiceClient interface {
	GenerateBulletin(ctx context.Context, in *GenerateBulletinRequest, opts ...grpc.CallOption) (*GenerateBulletinResponse, error)
}

type bulletinServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBulletinServiceClient(cc grpc.ClientConnInterface) BulletinServiceClient {
	return &bulletinServiceClient{cc}
}

func (c *bulletinServiceClient) GenerateBulletin(ctx context.Context, in *GenerateBulletinRequest, opts ...grpc.CallOption) (*GenerateBulletinResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateBulletinResponse)
	err := c.cc.Invoke(ctx, BulletinService_GenerateBulletin_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BulletinServiceServer is the server API for BulletinService service.
// All implementations must embed UnimplementedBulletinServiceServer
// for forward compatibility.
type BulletinServiceServer interface {
	GenerateBulletin(context.Context, *GenerateBulletinRequest) (*GenerateBulletinResponse, error)
	mustEmbedUnimplementedBulletinServiceServer()
}

// UnimplementedBulletinServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedBulletinServiceServer struct{}

func (UnimplementedBulletinServiceServer) GenerateBulletin(context.Context, *GenerateBulletinRequest) (*GenerateBulletinResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateBulletin not implemented")
}
func (UnimplementedBulletinServiceServer) mustEmbedUnimplementedBulletinServiceServer() {}
func (UnimplementedBulletinServiceServer) testEmbeddedByValue()                         {}

// UnsafeBulletinServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BulletinServiceServer will
// result in compilation errors.
type UnsafeBulletinServiceServer interface {
	mustEmbedUnimplementedBulletinServiceServer()
}

func RegisterBulletinServiceServer(s grpc.ServiceRegistrar, srv BulletinServiceServer) {
	// If the following call pancis, it indicates UnimplementedBulletinServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&BulletinService_ServiceDesc, srv)
}

func _BulletinService_GenerateBulletin_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateBulletinRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BulletinServiceServer).GenerateBulletin(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BulletinService_GenerateBulletin_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BulletinServiceServer).GenerateBulletin(ctx, req.(*GenerateBulletinRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BulletinService_ServiceDesc is the grpc.ServiceDesc for BulletinService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BulletinService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "notices.v1.BulletinService",
	HandlerType: (*BulletinServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateBulletin",
			Handler:    _BulletinService_GenerateBulletin_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "notices/v1/notices.proto",
}
