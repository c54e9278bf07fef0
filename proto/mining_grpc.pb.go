// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: mining.proto

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
	MiningService_ExtractPatterns_FullMethodName = "/mining.v1.MiningService/ExtractPatterns"
)

// MiningServiceClient is the client API for MiningService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// MiningService is the external pattern-mining service. The plugin calls
// it with a hook event's description and tool trace; the service returns
// mined candidate patterns with confidences.
type MiningServiceClient interface {
	ExtractPatterns(ctx context.Context, in *ExtractPatternsRequest, opts ...grpc.CallOption) (*ExtractPatternsResponse, error)
}

type miningServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMiningServiceClient(cc grpc.ClientConnInterface) MiningServiceClient {
	return &miningServiceClient{cc}
}

func (c *miningServiceClient) ExtractPatterns(ctx context.Context, in *ExtractPatternsRequest, opts ...grpc.CallOption) (*ExtractPatternsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractPatternsResponse)
	err := c.cc.Invoke(ctx, MiningService_ExtractPatterns_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MiningServiceServer is the server API for MiningService service.
// All implementations must embed UnimplementedMiningServiceServer
// for forward compatibility.
//
// MiningService is the external pattern-mining service. The plugin calls
// it with a hook event's description and tool trace; the service returns
// mined candidate patterns with confidences.
type MiningServiceServer interface {
	ExtractPatterns(context.Context, *ExtractPatternsRequest) (*ExtractPatternsResponse, error)
	mustEmbedUnimplementedMiningServiceServer()
}

// UnimplementedMiningServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMiningServiceServer struct{}

func (UnimplementedMiningServiceServer) ExtractPatterns(context.Context, *ExtractPatternsRequest) (*ExtractPatternsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExtractPatterns not implemented")
}
func (UnimplementedMiningServiceServer) mustEmbedUnimplementedMiningServiceServer() {}
func (UnimplementedMiningServiceServer) testEmbeddedByValue()                       {}

// UnsafeMiningServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MiningServiceServer will
// result in compilation errors.
type UnsafeMiningServiceServer interface {
	mustEmbedUnimplementedMiningServiceServer()
}

func RegisterMiningServiceServer(s grpc.ServiceRegistrar, srv MiningServiceServer) {
	// If the following call panics, it indicates UnimplementedMiningServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MiningService_ServiceDesc, srv)
}

func _MiningService_ExtractPatterns_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractPatternsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MiningServiceServer).ExtractPatterns(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MiningService_ExtractPatterns_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MiningServiceServer).ExtractPatterns(ctx, req.(*ExtractPatternsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MiningService_ServiceDesc is the grpc.ServiceDesc for MiningService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MiningService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "mining.v1.MiningService",
	HandlerType: (*MiningServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExtractPatterns",
			Handler:    _MiningService_ExtractPatterns_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mining.proto",
}
