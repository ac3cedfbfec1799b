// Copyright 2022 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server implements the Tree service, which exposes a multiway search
// tree of 64-bit keys over gRPC.  The server runtime starts with Init and ends
// with Finalize; Snapshot and Restore copy the tree aside and move it back.
package server

import (
	"context"
	"errors"
	"math"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/9rum/multiway/internal/store"
	"github.com/golang/glog"
	"github.com/golang/protobuf/ptypes/empty"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// treeServer implements the server API for Tree service.
type treeServer struct {
	UnimplementedTreeServer
	store     atomic.Pointer[store.Store]
	capacity  int
	snapshots int
	done      chan<- os.Signal
	once      sync.Once
}

// NewTreeServer creates a new tree server.  Trees initialized with a zero
// capacity get the given default capacity, and at most the given number of
// snapshots is retained.  Finalize closes done.
func NewTreeServer(done chan<- os.Signal, capacity, snapshots int) TreeServer {
	return &treeServer{
		capacity:  capacity,
		snapshots: snapshots,
		done:      done,
	}
}

// NewServer creates a gRPC server with the Tree service registered.  Panics in
// handlers are turned into errors.  The server stops gracefully once done is
// closed or receives a signal.
func NewServer(done chan os.Signal, capacity, snapshots int) *grpc.Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(),
		),
	)

	go func(done <-chan os.Signal, server *grpc.Server) {
		<-done
		server.GracefulStop()
	}(done, server)

	RegisterTreeServer(server, NewTreeServer(done, capacity, snapshots))

	return server
}

// Init creates an empty tree with the given node capacity, replacing any tree
// from an earlier Init along with its snapshots.
func (s *treeServer) Init(ctx context.Context, in *wrapperspb.UInt64Value) (*empty.Empty, error) {
	glog.Infof("Init called with capacity: %d", in.GetValue())

	if math.MaxInt32 < in.GetValue() {
		return nil, status.Errorf(codes.InvalidArgument, "capacity %d out of range", in.GetValue())
	}
	capacity := int(in.GetValue())
	if capacity == 0 {
		capacity = s.capacity
	}
	st, err := store.New(capacity, s.snapshots)
	if err != nil {
		return nil, toStatus(err)
	}
	s.store.Store(st)

	return new(empty.Empty), nil
}

// load returns the store created by Init.
func (s *treeServer) load() (*store.Store, error) {
	if st := s.store.Load(); st != nil {
		return st, nil
	}
	return nil, status.Error(codes.FailedPrecondition, "Init has not been called")
}

// toStatus maps store errors to gRPC status errors.
func toStatus(err error) error {
	switch {
	case errors.Is(err, store.ErrSnapshotNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, store.ErrBadCapacity):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// Insert adds a key and reports whether it was new.
func (s *treeServer) Insert(ctx context.Context, in *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error) {
	glog.V(2).Infof("Insert called with key: %d", in.GetValue())

	st, err := s.load()
	if err != nil {
		return nil, err
	}
	return wrapperspb.Bool(st.Insert(in.GetValue())), nil
}

// Find reports whether a key is present.
func (s *treeServer) Find(ctx context.Context, in *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error) {
	glog.V(2).Infof("Find called with key: %d", in.GetValue())

	st, err := s.load()
	if err != nil {
		return nil, err
	}
	return wrapperspb.Bool(st.Find(in.GetValue())), nil
}

// Values lists all keys in ascending order.  Keys are sent as decimal strings
// since list values carry numbers as doubles.
func (s *treeServer) Values(ctx context.Context, in *empty.Empty) (*structpb.ListValue, error) {
	glog.Info("Values called")

	st, err := s.load()
	if err != nil {
		return nil, err
	}
	keys := st.Values()
	out := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(keys))}
	for _, key := range keys {
		out.Values = append(out.Values, structpb.NewStringValue(strconv.FormatInt(key, 10)))
	}
	return out, nil
}

// Dump renders the tree breadth-first.
func (s *treeServer) Dump(ctx context.Context, in *empty.Empty) (*wrapperspb.StringValue, error) {
	glog.Info("Dump called")

	st, err := s.load()
	if err != nil {
		return nil, err
	}
	return wrapperspb.String(st.Dump()), nil
}

// Snapshot stores a copy of the tree and returns its id.
func (s *treeServer) Snapshot(ctx context.Context, in *empty.Empty) (*wrapperspb.StringValue, error) {
	st, err := s.load()
	if err != nil {
		return nil, err
	}
	id := st.Snapshot()
	glog.Infof("Snapshot %s taken with %d keys", id, st.Len())

	return wrapperspb.String(id), nil
}

// Restore replaces the tree with the snapshot of the given id.
func (s *treeServer) Restore(ctx context.Context, in *wrapperspb.StringValue) (*empty.Empty, error) {
	glog.Infof("Restore called with snapshot: %s", in.GetValue())

	st, err := s.load()
	if err != nil {
		return nil, err
	}
	if err = st.Restore(in.GetValue()); err != nil {
		return nil, toStatus(err)
	}
	return new(empty.Empty), nil
}

// Finalize terminates the server.
func (s *treeServer) Finalize(ctx context.Context, in *empty.Empty) (*empty.Empty, error) {
	defer s.once.Do(func() {
		close(s.done)
	})

	glog.Info("Finalize called")
	defer glog.Flush()

	s.store.Store(nil)

	return new(empty.Empty), nil
}
