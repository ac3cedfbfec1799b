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

// The client package provides typed access to the Tree service.  The
// primitives mirror the service: the runtime always starts with Init and ends
// with Finalize.
package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/9rum/multiway/server"
	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client is a Tree service client.
type Client struct {
	conn *grpc.ClientConn
	tree server.TreeClient
}

// Dial connects to the Tree service at target.  Unless other transport
// credentials are given, the connection is insecure.
func Dial(target string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.Dial(target, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, tree: server.NewTreeClient(conn)}, nil
}

// New creates a client over an existing connection.  Close is a no-op for
// such clients.
func New(cc grpc.ClientConnInterface) *Client {
	return &Client{tree: server.NewTreeClient(cc)}
}

// Close tears down the connection opened by Dial.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Init creates an empty tree with the given node capacity; zero selects the
// default capacity.
func (c *Client) Init(ctx context.Context, capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("client: negative capacity %d", capacity)
	}
	_, err := c.tree.Init(ctx, wrapperspb.UInt64(uint64(capacity)))
	return err
}

// Insert adds a key and reports whether it was new.
func (c *Client) Insert(ctx context.Context, key int64) (bool, error) {
	r, err := c.tree.Insert(ctx, wrapperspb.Int64(key))
	if err != nil {
		return false, err
	}
	return r.GetValue(), nil
}

// Find reports whether a key is present.
func (c *Client) Find(ctx context.Context, key int64) (bool, error) {
	r, err := c.tree.Find(ctx, wrapperspb.Int64(key))
	if err != nil {
		return false, err
	}
	return r.GetValue(), nil
}

// Values returns all keys in ascending order.
func (c *Client) Values(ctx context.Context) ([]int64, error) {
	r, err := c.tree.Values(ctx, new(empty.Empty))
	if err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(r.GetValues()))
	for _, v := range r.GetValues() {
		key, err := strconv.ParseInt(v.GetStringValue(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("client: malformed key %q: %w", v.GetStringValue(), err)
		}
		out = append(out, key)
	}
	return out, nil
}

// Dump returns the breadth-first rendering of the tree.
func (c *Client) Dump(ctx context.Context) (string, error) {
	r, err := c.tree.Dump(ctx, new(empty.Empty))
	if err != nil {
		return "", err
	}
	return r.GetValue(), nil
}

// Snapshot stores a copy of the tree and returns its id.
func (c *Client) Snapshot(ctx context.Context) (string, error) {
	r, err := c.tree.Snapshot(ctx, new(empty.Empty))
	if err != nil {
		return "", err
	}
	return r.GetValue(), nil
}

// Restore replaces the tree with the snapshot of the given id.
func (c *Client) Restore(ctx context.Context, id string) error {
	_, err := c.tree.Restore(ctx, wrapperspb.String(id))
	return err
}

// Finalize terminates the server.
func (c *Client) Finalize(ctx context.Context) error {
	_, err := c.tree.Finalize(ctx, new(empty.Empty))
	return err
}
