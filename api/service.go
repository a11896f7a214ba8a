package api

// Service plumbing for the Commitment RPC surface. The messages are
// protobuf well-known types, so no generated package is needed; the
// service descriptor and client stubs are declared directly.

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const serviceName = "canopy.Commitment"

// CommitmentServer is the server-side contract.
//
//   - Build takes an EncodeValues blob, builds and persists the tree and
//     returns the new root digest.
//   - Root returns the current root digest.
//   - GetLeaf returns the value of the leaf at the given input position.
//   - GetProof returns the marshaled inclusion proof for that position.
type CommitmentServer interface {
	Build(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
	Root(context.Context, *emptypb.Empty) (*wrapperspb.BytesValue, error)
	GetLeaf(context.Context, *wrapperspb.UInt64Value) (*wrapperspb.BytesValue, error)
	GetProof(context.Context, *wrapperspb.UInt64Value) (*wrapperspb.BytesValue, error)
}

// RegisterCommitmentServer registers srv on s under the Commitment service.
func RegisterCommitmentServer(s grpc.ServiceRegistrar, srv CommitmentServer) {
	s.RegisterService(&commitmentServiceDesc, srv)
}

var commitmentServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*CommitmentServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Build", Handler: buildHandler},
		{MethodName: "Root", Handler: rootHandler},
		{MethodName: "GetLeaf", Handler: getLeafHandler},
		{MethodName: "GetProof", Handler: getProofHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "canopy/api",
}

func buildHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CommitmentServer).Build(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Build"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CommitmentServer).Build(ctx, req.(*wrapperspb.BytesValue))
	}

	return interceptor(ctx, in, info, handler)
}

func rootHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CommitmentServer).Root(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Root"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CommitmentServer).Root(ctx, req.(*emptypb.Empty))
	}

	return interceptor(ctx, in, info, handler)
}

func getLeafHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.UInt64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CommitmentServer).GetLeaf(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/GetLeaf"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CommitmentServer).GetLeaf(ctx, req.(*wrapperspb.UInt64Value))
	}

	return interceptor(ctx, in, info, handler)
}

func getProofHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.UInt64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CommitmentServer).GetProof(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/GetProof"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CommitmentServer).GetProof(ctx, req.(*wrapperspb.UInt64Value))
	}

	return interceptor(ctx, in, info, handler)
}

// CommitmentClient is the client-side contract, mirroring CommitmentServer.
type CommitmentClient interface {
	Build(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	Root(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	GetLeaf(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	GetProof(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
}

type commitmentClient struct {
	cc grpc.ClientConnInterface
}

func NewCommitmentClient(cc grpc.ClientConnInterface) CommitmentClient {
	return &commitmentClient{cc: cc}
}

func (c *commitmentClient) Build(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Build", in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *commitmentClient) Root(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Root", in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *commitmentClient) GetLeaf(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/GetLeaf", in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *commitmentClient) GetProof(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/GetProof", in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}
