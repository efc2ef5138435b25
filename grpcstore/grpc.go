// Package grpcstore exposes a vbmeta blob store, plus server-side descriptor
// inspection, over gRPC.
package grpcstore

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ImageStoreServer is the server API for the ImageStore gRPC service.
//
// We intentionally use protobuf well-known types (wrappers and Struct) so
// this package does not require a protoc/codegen toolchain.
//
// Proto definition: imagestore.proto.
type ImageStoreServer interface {
	Put(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)
	Get(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error)
	Has(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	Inspect(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
}

// UnimplementedImageStoreServer can be embedded to have forward compatible
// implementations.
type UnimplementedImageStoreServer struct{}

func (UnimplementedImageStoreServer) Put(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Put not implemented")
}
func (UnimplementedImageStoreServer) Get(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Get not implemented")
}
func (UnimplementedImageStoreServer) Has(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Has not implemented")
}
func (UnimplementedImageStoreServer) Inspect(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Inspect not implemented")
}

// RegisterImageStoreServer registers the ImageStore service on a gRPC server.
func RegisterImageStoreServer(s grpc.ServiceRegistrar, srv ImageStoreServer) {
	s.RegisterService(&ImageStore_ServiceDesc, srv)
}

// ImageStoreClient is the client API for the ImageStore gRPC service.
type ImageStoreClient interface {
	Put(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Get(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	Has(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	Inspect(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

type imageStoreClient struct{ cc grpc.ClientConnInterface }

func NewImageStoreClient(cc grpc.ClientConnInterface) ImageStoreClient {
	return &imageStoreClient{cc: cc}
}

func (c *imageStoreClient) Put(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, "/xdao.vbmeta.storage.v1.ImageStore/Put", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *imageStoreClient) Get(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, "/xdao.vbmeta.storage.v1.ImageStore/Get", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *imageStoreClient) Has(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, "/xdao.vbmeta.storage.v1.ImageStore/Has", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *imageStoreClient) Inspect(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, "/xdao.vbmeta.storage.v1.ImageStore/Inspect", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func _ImageStore_Put_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImageStoreServer).Put(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.vbmeta.storage.v1.ImageStore/Put"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImageStoreServer).Put(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImageStore_Get_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImageStoreServer).Get(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.vbmeta.storage.v1.ImageStore/Get"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImageStoreServer).Get(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImageStore_Has_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImageStoreServer).Has(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.vbmeta.storage.v1.ImageStore/Has"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImageStoreServer).Has(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _ImageStore_Inspect_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImageStoreServer).Inspect(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.vbmeta.storage.v1.ImageStore/Inspect"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ImageStoreServer).Inspect(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// ImageStore_ServiceDesc is the grpc.ServiceDesc for the ImageStore service.
var ImageStore_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "xdao.vbmeta.storage.v1.ImageStore",
	HandlerType: (*ImageStoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Put", Handler: _ImageStore_Put_Handler},
		{MethodName: "Get", Handler: _ImageStore_Get_Handler},
		{MethodName: "Has", Handler: _ImageStore_Has_Handler},
		{MethodName: "Inspect", Handler: _ImageStore_Inspect_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "imagestore.proto",
}
