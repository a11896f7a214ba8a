// Package api serves a built merkle tree over gRPC: submit a leaf batch,
// query the root digest, fetch leaf values and inclusion proofs.
// Verification stays client-side; a verifier only needs the value, the
// proof and the root digest.
package api

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"canopy/merkle"
	"canopy/storage"
)

type Server struct {
	store  *storage.TreeStore
	logger *zap.SugaredLogger

	mu   sync.RWMutex
	tree *merkle.Tree
}

// NewServer returns a server over store. tree may be nil when nothing has
// been built yet; queries fail with FailedPrecondition until a Build.
func NewServer(store *storage.TreeStore, tree *merkle.Tree, logger *zap.SugaredLogger) *Server {
	return &Server{store: store, tree: tree, logger: logger}
}

func (s *Server) Build(_ context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	values, err := DecodeValues(in.Value)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	tree, err := merkle.New(values)
	switch {
	case errors.Is(err, merkle.ErrInvalidInputSize):
		return nil, status.Error(codes.InvalidArgument, err.Error())
	case err != nil:
		return nil, status.Error(codes.Internal, err.Error())
	}

	if err := s.store.Save(tree); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	root, err := tree.RootDigest()
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	// New tree goes live only after it is fully constructed and saved.
	s.mu.Lock()
	s.tree = tree
	s.mu.Unlock()

	s.logger.Infow("tree built", "leaves", tree.LeafCount(), "nodes", tree.Size())

	return &wrapperspb.BytesValue{Value: root}, nil
}

func (s *Server) Root(context.Context, *emptypb.Empty) (*wrapperspb.BytesValue, error) {
	tree, err := s.current()
	if err != nil {
		return nil, err
	}

	root, err := tree.RootDigest()
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &wrapperspb.BytesValue{Value: root}, nil
}

func (s *Server) GetLeaf(_ context.Context, id *wrapperspb.UInt64Value) (*wrapperspb.BytesValue, error) {
	tree, err := s.current()
	if err != nil {
		return nil, err
	}

	leaf, err := tree.Leaf(id.Value)
	switch {
	case errors.Is(err, merkle.ErrOutOfRange):
		return nil, status.Error(codes.OutOfRange, err.Error())
	case err != nil:
		return nil, status.Error(codes.Internal, err.Error())
	default:
		return &wrapperspb.BytesValue{Value: leaf.Value()}, nil
	}
}

func (s *Server) GetProof(_ context.Context, id *wrapperspb.UInt64Value) (*wrapperspb.BytesValue, error) {
	tree, err := s.current()
	if err != nil {
		return nil, err
	}

	proof, err := tree.Proof(id.Value)
	switch {
	case errors.Is(err, merkle.ErrOutOfRange):
		return nil, status.Error(codes.OutOfRange, err.Error())
	case err != nil:
		return nil, status.Error(codes.Internal, err.Error())
	default:
		return &wrapperspb.BytesValue{Value: proof.Marshal()}, nil
	}
}

func (s *Server) current() (*merkle.Tree, error) {
	s.mu.RLock()
	tree := s.tree
	s.mu.RUnlock()

	if tree == nil {
		return nil, status.Error(codes.FailedPrecondition, "no tree has been built")
	}

	return tree, nil
}
