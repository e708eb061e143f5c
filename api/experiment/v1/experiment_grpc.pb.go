// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: experiment/v1/experiment.proto

package experimentv1

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
	ExperimentService_SubmitExperiment_FullMethodName   = "/experiment.v1.ExperimentService/SubmitExperiment"
	ExperimentService_GetExperiment_FullMethodName      = "/experiment.v1.ExperimentService/GetExperiment"
	ExperimentService_ListExperiments_FullMethodName    = "/experiment.v1.ExperimentService/ListExperiments"
	ExperimentService_WithdrawExperiment_FullMethodName = "/experiment.v1.ExperimentService/WithdrawExperiment"
	ExperimentService_PauseExperiment_FullMethodName    = "/experiment.v1.ExperimentService/PauseExperiment"
	ExperimentService_ResumeExperiment_FullMethodName   = "/experiment.v1.ExperimentService/ResumeExperiment"
	ExperimentService_GetACData_FullMethodName          = "/experiment.v1.ExperimentService/GetACData"
	ExperimentService_GetDCData_FullMethodName          = "/experiment.v1.ExperimentService/GetDCData"
	ExperimentService_GetElementEvents_FullMethodName   = "/experiment.v1.ExperimentService/GetElementEvents"
	ExperimentService_StreamMeasurements_FullMethodName = "/experiment.v1.ExperimentService/StreamMeasurements"
)

// ExperimentServiceClient is the client API for ExperimentService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExperimentService is the operator-facing surface: submit element
// sequences, follow their lifecycle and fetch or stream measurement data.
type ExperimentServiceClient interface {
	SubmitExperiment(ctx context.Context, in *SubmitExperimentRequest, opts ...grpc.CallOption) (*SubmitExperimentResponse, error)
	GetExperiment(ctx context.Context, in *GetExperimentRequest, opts ...grpc.CallOption) (*GetExperimentResponse, error)
	ListExperiments(ctx context.Context, in *ListExperimentsRequest, opts ...grpc.CallOption) (*ListExperimentsResponse, error)
	WithdrawExperiment(ctx context.Context, in *WithdrawExperimentRequest, opts ...grpc.CallOption) (*WithdrawExperimentResponse, error)
	PauseExperiment(ctx context.Context, in *PauseExperimentRequest, opts ...grpc.CallOption) (*PauseExperimentResponse, error)
	ResumeExperiment(ctx context.Context, in *ResumeExperimentRequest, opts ...grpc.CallOption) (*ResumeExperimentResponse, error)
	GetACData(ctx context.Context, in *GetACDataRequest, opts ...grpc.CallOption) (*GetACDataResponse, error)
	GetDCData(ctx context.Context, in *GetDCDataRequest, opts ...grpc.CallOption) (*GetDCDataResponse, error)
	GetElementEvents(ctx context.Context, in *GetElementEventsRequest, opts ...grpc.CallOption) (*GetElementEventsResponse, error)
	StreamMeasurements(ctx context.Context, in *StreamMeasurementsRequest, opts ...grpc.CallOption) (ExperimentService_StreamMeasurementsClient, error)
}

type experimentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExperimentServiceClient(cc grpc.ClientConnInterface) ExperimentServiceClient {
	return &experimentServiceClient{cc}
}

func (c *experimentServiceClient) SubmitExperiment(ctx context.Context, in *SubmitExperimentRequest, opts ...grpc.CallOption) (*SubmitExperimentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitExperimentResponse)
	err := c.cc.Invoke(ctx, ExperimentService_SubmitExperiment_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *experimentServiceClient) GetExperiment(ctx context.Context, in *GetExperimentRequest, opts ...grpc.CallOption) (*GetExperimentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetExperimentResponse)
	err := c.cc.Invoke(ctx, ExperimentService_GetExperiment_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *experimentServiceClient) ListExperiments(ctx context.Context, in *ListExperimentsRequest, opts ...grpc.CallOption) (*ListExperimentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListExperimentsResponse)
	err := c.cc.Invoke(ctx, ExperimentService_ListExperiments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *experimentServiceClient) WithdrawExperiment(ctx context.Context, in *WithdrawExperimentRequest, opts ...grpc.CallOption) (*WithdrawExperimentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(WithdrawExperimentResponse)
	err := c.cc.Invoke(ctx, ExperimentService_WithdrawExperiment_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *experimentServiceClient) PauseExperiment(ctx context.Context, in *PauseExperimentRequest, opts ...grpc.CallOption) (*PauseExperimentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PauseExperimentResponse)
	err := c.cc.Invoke(ctx, ExperimentService_PauseExperiment_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *experimentServiceClient) ResumeExperiment(ctx context.Context, in *ResumeExperimentRequest, opts ...grpc.CallOption) (*ResumeExperimentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResumeExperimentResponse)
	err := c.cc.Invoke(ctx, ExperimentService_ResumeExperiment_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *experimentServiceClient) GetACData(ctx context.Context, in *GetACDataRequest, opts ...grpc.CallOption) (*GetACDataResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetACDataResponse)
	err := c.cc.Invoke(ctx, ExperimentService_GetACData_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *experimentServiceClient) GetDCData(ctx context.Context, in *GetDCDataRequest, opts ...grpc.CallOption) (*GetDCDataResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDCDataResponse)
	err := c.cc.Invoke(ctx, ExperimentService_GetDCData_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *experimentServiceClient) GetElementEvents(ctx context.Context, in *GetElementEventsRequest, opts ...grpc.CallOption) (*GetElementEventsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetElementEventsResponse)
	err := c.cc.Invoke(ctx, ExperimentService_GetElementEvents_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *experimentServiceClient) StreamMeasurements(ctx context.Context, in *StreamMeasurementsRequest, opts ...grpc.CallOption) (ExperimentService_StreamMeasurementsClient, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &ExperimentService_ServiceDesc.Streams[0], ExperimentService_StreamMeasurements_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &experimentServiceStreamMeasurementsClient{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type ExperimentService_StreamMeasurementsClient interface {
	Recv() (*MeasurementPoint, error)
	grpc.ClientStream
}

type experimentServiceStreamMeasurementsClient struct {
	grpc.ClientStream
}

func (x *experimentServiceStreamMeasurementsClient) Recv() (*MeasurementPoint, error) {
	m := new(MeasurementPoint)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ExperimentServiceServer is the server API for ExperimentService service.
// All implementations must embed UnimplementedExperimentServiceServer
// for forward compatibility
//
// ExperimentService is the operator-facing surface: submit element
// sequences, follow their lifecycle and fetch or stream measurement data.
type ExperimentServiceServer interface {
	SubmitExperiment(context.Context, *SubmitExperimentRequest) (*SubmitExperimentResponse, error)
	GetExperiment(context.Context, *GetExperimentRequest) (*GetExperimentResponse, error)
	ListExperiments(context.Context, *ListExperimentsRequest) (*ListExperimentsResponse, error)
	WithdrawExperiment(context.Context, *WithdrawExperimentRequest) (*WithdrawExperimentResponse, error)
	PauseExperiment(context.Context, *PauseExperimentRequest) (*PauseExperimentResponse, error)
	ResumeExperiment(context.Context, *ResumeExperimentRequest) (*ResumeExperimentResponse, error)
	GetACData(context.Context, *GetACDataRequest) (*GetACDataResponse, error)
	GetDCData(context.Context, *GetDCDataRequest) (*GetDCDataResponse, error)
	GetElementEvents(context.Context, *GetElementEventsRequest) (*GetElementEventsResponse, error)
	StreamMeasurements(*StreamMeasurementsRequest, ExperimentService_StreamMeasurementsServer) error
	mustEmbedUnimplementedExperimentServiceServer()
}

// UnimplementedExperimentServiceServer must be embedded to have forward compatible implementations.
type UnimplementedExperimentServiceServer struct {
}

func (UnimplementedExperimentServiceServer) SubmitExperiment(context.Context, *SubmitExperimentRequest) (*SubmitExperimentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitExperiment not implemented")
}
func (UnimplementedExperimentServiceServer) GetExperiment(context.Context, *GetExperimentRequest) (*GetExperimentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetExperiment not implemented")
}
func (UnimplementedExperimentServiceServer) ListExperiments(context.Context, *ListExperimentsRequest) (*ListExperimentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListExperiments not implemented")
}
func (UnimplementedExperimentServiceServer) WithdrawExperiment(context.Context, *WithdrawExperimentRequest) (*WithdrawExperimentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method WithdrawExperiment not implemented")
}
func (UnimplementedExperimentServiceServer) PauseExperiment(context.Context, *PauseExperimentRequest) (*PauseExperimentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PauseExperiment not implemented")
}
func (UnimplementedExperimentServiceServer) ResumeExperiment(context.Context, *ResumeExperimentRequest) (*ResumeExperimentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResumeExperiment not implemented")
}
func (UnimplementedExperimentServiceServer) GetACData(context.Context, *GetACDataRequest) (*GetACDataResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetACData not implemented")
}
func (UnimplementedExperimentServiceServer) GetDCData(context.Context, *GetDCDataRequest) (*GetDCDataResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDCData not implemented")
}
func (UnimplementedExperimentServiceServer) GetElementEvents(context.Context, *GetElementEventsRequest) (*GetElementEventsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetElementEvents not implemented")
}
func (UnimplementedExperimentServiceServer) StreamMeasurements(*StreamMeasurementsRequest, ExperimentService_StreamMeasurementsServer) error {
	return status.Errorf(codes.Unimplemented, "method StreamMeasurements not implemented")
}
func (UnimplementedExperimentServiceServer) mustEmbedUnimplementedExperimentServiceServer() {}

// UnsafeExperimentServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExperimentServiceServer will
// result in compilation errors.
type UnsafeExperimentServiceServer interface {
	mustEmbedUnimplementedExperimentServiceServer()
}

func RegisterExperimentServiceServer(s grpc.ServiceRegistrar, srv ExperimentServiceServer) {
	s.RegisterService(&ExperimentService_ServiceDesc, srv)
}

func _ExperimentService_SubmitExperiment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitExperimentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExperimentServiceServer).SubmitExperiment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExperimentService_SubmitExperiment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExperimentServiceServer).SubmitExperiment(ctx, req.(*SubmitExperimentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExperimentService_GetExperiment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetExperimentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExperimentServiceServer).GetExperiment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExperimentService_GetExperiment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExperimentServiceServer).GetExperiment(ctx, req.(*GetExperimentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExperimentService_ListExperiments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListExperimentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExperimentServiceServer).ListExperiments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExperimentService_ListExperiments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExperimentServiceServer).ListExperiments(ctx, req.(*ListExperimentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExperimentService_WithdrawExperiment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WithdrawExperimentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExperimentServiceServer).WithdrawExperiment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExperimentService_WithdrawExperiment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExperimentServiceServer).WithdrawExperiment(ctx, req.(*WithdrawExperimentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExperimentService_PauseExperiment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PauseExperimentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExperimentServiceServer).PauseExperiment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExperimentService_PauseExperiment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExperimentServiceServer).PauseExperiment(ctx, req.(*PauseExperimentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExperimentService_ResumeExperiment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResumeExperimentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExperimentServiceServer).ResumeExperiment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExperimentService_ResumeExperiment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExperimentServiceServer).ResumeExperiment(ctx, req.(*ResumeExperimentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExperimentService_GetACData_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetACDataRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExperimentServiceServer).GetACData(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExperimentService_GetACData_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExperimentServiceServer).GetACData(ctx, req.(*GetACDataRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExperimentService_GetDCData_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDCDataRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExperimentServiceServer).GetDCData(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExperimentService_GetDCData_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExperimentServiceServer).GetDCData(ctx, req.(*GetDCDataRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExperimentService_GetElementEvents_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetElementEventsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExperimentServiceServer).GetElementEvents(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExperimentService_GetElementEvents_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExperimentServiceServer).GetElementEvents(ctx, req.(*GetElementEventsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExperimentService_StreamMeasurements_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(StreamMeasurementsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ExperimentServiceServer).StreamMeasurements(m, &experimentServiceStreamMeasurementsServer{ServerStream: stream})
}

type ExperimentService_StreamMeasurementsServer interface {
	Send(*MeasurementPoint) error
	grpc.ServerStream
}

type experimentServiceStreamMeasurementsServer struct {
	grpc.ServerStream
}

func (x *experimentServiceStreamMeasurementsServer) Send(m *MeasurementPoint) error {
	return x.ServerStream.SendMsg(m)
}

// ExperimentService_ServiceDesc is the grpc.ServiceDesc for ExperimentService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExperimentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "experiment.v1.ExperimentService",
	HandlerType: (*ExperimentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitExperiment",
			Handler:    _ExperimentService_SubmitExperiment_Handler,
		},
		{
			MethodName: "GetExperiment",
			Handler:    _ExperimentService_GetExperiment_Handler,
		},
		{
			MethodName: "ListExperiments",
			Handler:    _ExperimentService_ListExperiments_Handler,
		},
		{
			MethodName: "WithdrawExperiment",
			Handler:    _ExperimentService_WithdrawExperiment_Handler,
		},
		{
			MethodName: "PauseExperiment",
			Handler:    _ExperimentService_PauseExperiment_Handler,
		},
		{
			MethodName: "ResumeExperiment",
			Handler:    _ExperimentService_ResumeExperiment_Handler,
		},
		{
			MethodName: "GetACData",
			Handler:    _ExperimentService_GetACData_Handler,
		},
		{
			MethodName: "GetDCData",
			Handler:    _ExperimentService_GetDCData_Handler,
		},
		{
			MethodName: "GetElementEvents",
			Handler:    _ExperimentService_GetElementEvents_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamMeasurements",
			Handler:       _ExperimentService_StreamMeasurements_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "experiment/v1/experiment.proto",
}
