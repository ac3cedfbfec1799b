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

// Package main implements the tree server.  The tree itself is created by the
// client through Init, and the client may terminate the server through
// Finalize.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/9rum/multiway/internal/btree"
	"github.com/9rum/multiway/internal/store"
	"github.com/9rum/multiway/server"
	"github.com/golang/glog"
	"google.golang.org/grpc"
)

func main() {
	port := flag.Int("p", 50051, "The server port")
	capacity := flag.Int("capacity", btree.DefaultMaxNodeElems, "The node capacity of trees initialized without one")
	snapshots := flag.Int("snapshots", store.DefaultSnapshots, "The number of snapshots to retain")
	flag.Parse()

	if *capacity <= 0 {
		glog.Fatalf("bad capacity: %d", *capacity)
	}
	if err := serve(*port, *capacity, *snapshots); err != nil {
		glog.Fatalf("failed to serve: %v", err)
	}
}

func serve(port, capacity, snapshots int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return err
	}

	srv := newServer(capacity, snapshots)
	glog.Infof("server listening at %v", lis.Addr())

	return srv.Serve(lis)
}

func newServer(capacity, snapshots int) *grpc.Server {
	srv := server.NewServer(make(chan os.Signal), capacity, snapshots)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func(sigs <-chan os.Signal, srv *grpc.Server) {
		sig := <-sigs
		glog.Infof("received %v, shutting down", sig)
		srv.GracefulStop()
		glog.Flush()
	}(sigs, srv)

	return srv
}
