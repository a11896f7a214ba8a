package api

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"canopy/merkle"
	"canopy/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	r := require.New(t)

	path := filepath.Join(os.TempDir(), "canopy-api-test.db")
	r.NoError(os.RemoveAll(path))

	db, err := storage.NewLevelDB(path)
	r.NoError(err)
	t.Cleanup(func() {
		r.NoError(db.Close())
		r.NoError(os.RemoveAll(path))
	})

	return NewServer(storage.NewTreeStore(db), nil, zap.NewNop().Sugar())
}

func TestServerQueriesBeforeBuild(t *testing.T) {
	r := require.New(t)
	server := newTestServer(t)
	ctx := context.Background()

	_, err := server.Root(ctx, &emptypb.Empty{})
	r.Equal(codes.FailedPrecondition, status.Code(err))

	_, err = server.GetProof(ctx, &wrapperspb.UInt64Value{Value: 0})
	r.Equal(codes.FailedPrecondition, status.Code(err))
}

func TestServerBuildAndQuery(t *testing.T) {
	r := require.New(t)
	server := newTestServer(t)
	ctx := context.Background()

	values := [][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d")}
	built, err := server.Build(ctx, &wrapperspb.BytesValue{Value: EncodeValues(values)})
	r.NoError(err)

	root, err := server.Root(ctx, &emptypb.Empty{})
	r.NoError(err)
	r.Equal(built.Value, root.Value)

	for i, value := range values {
		leaf, err := server.GetLeaf(ctx, &wrapperspb.UInt64Value{Value: uint64(i)})
		r.NoError(err)
		r.Equal(value, leaf.Value)

		raw, err := server.GetProof(ctx, &wrapperspb.UInt64Value{Value: uint64(i)})
		r.NoError(err)

		proof, err := merkle.UnmarshalProof(raw.Value)
		r.NoError(err)
		r.True(merkle.VerifyProof(value, proof, root.Value))
	}
}

func TestServerBuildRejectsBadBatch(t *testing.T) {
	r := require.New(t)
	server := newTestServer(t)
	ctx := context.Background()

	// Three leaves is not a power of two.
	bad := EncodeValues([][]byte{[]byte("a"), []byte("b"), []byte("c")})
	_, err := server.Build(ctx, &wrapperspb.BytesValue{Value: bad})
	r.Equal(codes.InvalidArgument, status.Code(err))

	// Garbage framing.
	_, err = server.Build(ctx, &wrapperspb.BytesValue{Value: []byte{0x01}})
	r.Equal(codes.InvalidArgument, status.Code(err))
}

func TestServerProofOutOfRange(t *testing.T) {
	r := require.New(t)
	server := newTestServer(t)
	ctx := context.Background()

	values := [][]byte{[]byte("a"), []byte("b")}
	_, err := server.Build(ctx, &wrapperspb.BytesValue{Value: EncodeValues(values)})
	r.NoError(err)

	_, err = server.GetProof(ctx, &wrapperspb.UInt64Value{Value: 2})
	r.Equal(codes.OutOfRange, status.Code(err))

	_, err = server.GetLeaf(ctx, &wrapperspb.UInt64Value{Value: 99})
	r.Equal(codes.OutOfRange, status.Code(err))
}
