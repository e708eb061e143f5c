// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: instrument/v1/instrument.proto

package instrumentv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.62.0 or later.
const _ = grpc.SupportPackageIsVersion8

const (
	InstrumentService_ListInstruments_FullMethodName      = "/instrument.v1.InstrumentService/ListInstruments"
	InstrumentService_GetInstrument_FullMethodName        = "/instrument.v1.InstrumentService/GetInstrument"
	InstrumentService_ConnectInstrument_FullMethodName    = "/instrument.v1.InstrumentService/ConnectInstrument"
	InstrumentService_DisconnectInstrument_FullMethodName = "/instrument.v1.InstrumentService/DisconnectInstrument"
)

// InstrumentServiceClient is the client API for InstrumentService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// InstrumentService manages the potentiostats attached to the host.
type InstrumentServiceClient interface {
	ListInstruments(ctx context.Context, in *ListInstrumentsRequest, opts ...grpc.CallOption) (*ListInstrumentsResponse, error)
	GetInstrument(ctx context.Context, in *GetInstrumentRequest, opts ...grpc.CallOption) (*GetInstrumentResponse, error)
	ConnectInstrument(ctx context.Context, in *ConnectInstrumentRequest, opts ...grpc.CallOption) (*ConnectInstrumentResponse, error)
	DisconnectInstrument(ctx context.Context, in *DisconnectInstrumentRequest, opts ...grpc.CallOption) (*DisconnectInstrumentResponse, error)
}

type instrumentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInstrumentServiceClient(cc grpc.ClientConnInterface) InstrumentServiceClient {
	return &instrumentServiceClient{cc}
}

func (c *instrumentServiceClient) ListInstruments(ctx context.Context, in *ListInstrumentsRequest, opts ...grpc.CallOption) (*ListInstrumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListInstrumentsResponse)
	err := c.cc.Invoke(ctx, InstrumentService_ListInstruments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *instrumentServiceClient) GetInstrument(ctx context.Context, in *GetInstrumentRequest, opts ...grpc.CallOption) (*GetInstrumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetInstrumentResponse)
	err := c.cc.Invoke(ctx, InstrumentService_GetInstrument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *instrumentServiceClient) ConnectInstrument(ctx context.Context, in *ConnectInstrumentRequest, opts ...grpc.CallOption) (*ConnectInstrumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConnectInstrumentResponse)
	err := c.cc.Invoke(ctx, InstrumentService_ConnectInstrument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *instrumentServiceClient) DisconnectInstrument(ctx context.Context, in *DisconnectInstrumentRequest, opts ...grpc.CallOption) (*DisconnectInstrumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DisconnectInstrumentResponse)
	err := c.cc.Invoke(ctx, InstrumentService_DisconnectInstrument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InstrumentServiceServer is the server API for InstrumentService service.
// All implementations must embed UnimplementedInstrumentServiceServer
// for forward compatibility
//
// InstrumentService manages the potentiostats attached to the host.
type InstrumentServiceServer interface {
	ListInstruments(context.Context, *ListInstrumentsRequest) (*ListInstrumentsResponse, error)
	GetInstrument(context.Context, *GetInstrumentRequest) (*GetInstrumentResponse, error)
	ConnectInstrument(context.Context, *ConnectInstrumentRequest) (*ConnectInstrumentResponse, error)
	DisconnectInstrument(context.Context, *DisconnectInstrumentRequest) (*DisconnectInstrumentResponse, error)
	mustEmbedUnimplementedInstrumentServiceServer()
}

// UnimplementedInstrumentServiceServer must be embedded to have forward compatible implementations.
type UnimplementedInstrumentServiceServer struct {
}

func (UnimplementedInstrumentServiceServer) ListInstruments(context.Context, *ListInstrumentsRequest) (*ListInstrumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListInstruments not implemented")
}
func (UnimplementedInstrumentServiceServer) GetInstrument(context.Context, *GetInstrumentRequest) (*GetInstrumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetInstrument not implemented")
}
func (UnimplementedInstrumentServiceServer) ConnectInstrument(context.Context, *ConnectInstrumentRequest) (*ConnectInstrumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConnectInstrument not implemented")
}
func (UnimplementedInstrumentServiceServer) DisconnectInstrument(context.Context, *DisconnectInstrumentRequest) (*DisconnectInstrumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DisconnectInstrument not implemented")
}
func (UnimplementedInstrumentServiceServer) mustEmbedUnimplementedInstrumentServiceServer() {}

// UnsafeInstrumentServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to InstrumentServiceServer will
// result in compilation errors.
type UnsafeInstrumentServiceServer interface {
	mustEmbedUnimplementedInstrumentServiceServer()
}

func RegisterInstrumentServiceServer(s grpc.ServiceRegistrar, srv InstrumentServiceServer) {
	s.RegisterService(&InstrumentService_ServiceDesc, srv)
}

func _InstrumentService_ListInstruments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListInstrumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InstrumentServiceServer).ListInstruments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InstrumentService_ListInstruments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InstrumentServiceServer).ListInstruments(ctx, req.(*ListInstrumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InstrumentService_GetInstrument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetInstrumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InstrumentServiceServer).GetInstrument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InstrumentService_GetInstrument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InstrumentServiceServer).GetInstrument(ctx, req.(*GetInstrumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InstrumentService_ConnectInstrument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConnectInstrumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InstrumentServiceServer).ConnectInstrument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InstrumentService_ConnectInstrument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InstrumentServiceServer).ConnectInstrument(ctx, req.(*ConnectInstrumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InstrumentService_DisconnectInstrument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DisconnectInstrumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InstrumentServiceServer).DisconnectInstrument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InstrumentService_DisconnectInstrument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InstrumentServiceServer).DisconnectInstrument(ctx, req.(*DisconnectInstrumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InstrumentService_ServiceDesc is the grpc.ServiceDesc for InstrumentService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var InstrumentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "instrument.v1.InstrumentService",
	HandlerType: (*InstrumentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListInstruments",
			Handler:    _InstrumentService_ListInstruments_Handler,
		},
		{
			MethodName: "GetInstrument",
			Handler:    _InstrumentService_GetInstrument_Handler,
		},
		{
			MethodName: "ConnectInstrument",
			Handler:    _InstrumentService_ConnectInstrument_Handler,
		},
		{
			MethodName: "DisconnectInstrument",
			Handler:    _InstrumentService_DisconnectInstrument_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "instrument/v1/instrument.proto",
}
