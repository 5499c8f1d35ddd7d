package remote

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhump/protoreflect/dynamic"
	"github.com/jhump/protoreflect/dynamic/grpcdynamic"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/gridmind/gridil/internal/catalog"
	"github.com/gridmind/gridil/internal/ctxlog"
	"github.com/gridmind/gridil/internal/object"
)

// Client is a primitive library served by a remote process. It implements
// catalog.Library, so extraction and search treat it exactly like the
// in-process collection.
type Client struct {
	conn   *grpc.ClientConn
	stub   grpcdynamic.Stub
	sigs   []catalog.Signature
	consts []catalog.Constant
	arity  map[string]int

	mu        sync.Mutex
	handleIDs map[*object.Callable]string
}

var (
	_ catalog.Library          = (*Client)(nil)
	_ catalog.ConstantProvider = (*Client)(nil)
)

// Dial connects to a library server and fetches its signature table and
// constant pool. Invocations happen lazily, one RPC per call.
func Dial(ctx context.Context, target string) (*Client, error) {
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("remote: connecting to %s: %w", target, err)
	}
	c, err := NewClient(ctx, conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

// NewClient wraps an established connection. The client owns the
// connection from here on; Close releases it.
func NewClient(ctx context.Context, conn *grpc.ClientConn) (*Client, error) {
	c := &Client{
		conn:      conn,
		stub:      grpcdynamic.NewStub(conn),
		arity:     make(map[string]int),
		handleIDs: make(map[*object.Callable]string),
	}
	if err := c.fetchSignatures(ctx); err != nil {
		return nil, err
	}
	if err := c.fetchConstants(ctx); err != nil {
		return nil, err
	}
	ctxlog.From(ctx).Debug("remote: connected to library",
		"target", conn.Target(), "primitives", len(c.sigs), "constants", len(c.consts))
	return c, nil
}

// Close releases the connection.
func (c *Client) Close() error { return c.conn.Close() }

// Signatures returns the signature table fetched at connect time.
func (c *Client) Signatures() []catalog.Signature { return c.sigs }

// Constants returns the constant pool fetched at connect time.
func (c *Client) Constants() []catalog.Constant { return c.consts }

// Callable returns a stub that invokes the named primitive remotely.
// Stub calls run to completion; the search layer abandons slow candidates
// instead of cancelling in-flight primitives.
func (c *Client) Callable(name string) (*object.Callable, bool) {
	arity, ok := c.arity[name]
	if !ok {
		return nil, false
	}
	return &object.Callable{
		Name:  name,
		Arity: arity,
		Fn: func(args ...object.Value) (object.Value, error) {
			return c.invoke(context.Background(), name, args)
		},
	}, true
}

func (c *Client) fetchSignatures(ctx context.Context) error {
	resp, err := c.stub.InvokeRpc(ctx, schema.listSignatures, dynamic.NewMessage(schema.empty))
	if err != nil {
		return fmt.Errorf("remote: listing signatures: %w", err)
	}
	msg, err := dynamic.AsDynamicMessage(resp)
	if err != nil {
		return fmt.Errorf("remote: listing signatures: %w", err)
	}

	raw, _ := getField(msg, "signatures").([]interface{})
	sigs := make([]catalog.Signature, 0, len(raw))
	for i, r := range raw {
		sm, ok := r.(*dynamic.Message)
		if !ok {
			return fmt.Errorf("remote: signature %d is not a message", i)
		}
		sig := catalog.Signature{}
		sig.Name, _ = getField(sm, "name").(string)
		sig.Return, _ = getField(sm, "ret").(string)
		params, _ := getField(sm, "params").([]interface{})
		for j, p := range params {
			pm, ok := p.(*dynamic.Message)
			if !ok {
				return fmt.Errorf("remote: signature %s param %d is not a message", sig.Name, j)
			}
			name, _ := getField(pm, "name").(string)
			tag, _ := getField(pm, "tag").(string)
			sig.Params = append(sig.Params, catalog.Param{Name: name, Tag: tag})
		}
		sigs = append(sigs, sig)
		c.arity[sig.Name] = len(sig.Params)
	}
	c.sigs = sigs
	return nil
}

func (c *Client) fetchConstants(ctx context.Context) error {
	resp, err := c.stub.InvokeRpc(ctx, schema.listConstants, dynamic.NewMessage(schema.empty))
	if err != nil {
		return fmt.Errorf("remote: listing constants: %w", err)
	}
	msg, err := dynamic.AsDynamicMessage(resp)
	if err != nil {
		return fmt.Errorf("remote: listing constants: %w", err)
	}

	raw, _ := getField(msg, "constants").([]interface{})
	consts := make([]catalog.Constant, 0, len(raw))
	for i, r := range raw {
		cm, ok := r.(*dynamic.Message)
		if !ok {
			return fmt.Errorf("remote: constant %d is not a message", i)
		}
		con := catalog.Constant{}
		con.Name, _ = getField(cm, "name").(string)
		con.Tag, _ = getField(cm, "tag").(string)
		vm, _ := getField(cm, "value").(*dynamic.Message)
		if vm == nil {
			return fmt.Errorf("remote: constant %s carries no value", con.Name)
		}
		v, err := decodeValue(vm, c)
		if err != nil {
			return fmt.Errorf("remote: constant %s: %w", con.Name, err)
		}
		con.Value = v
		consts = append(consts, con)
	}
	c.consts = consts
	return nil
}

// invoke performs one remote call. callee is a primitive name or a
// handle id from an earlier response.
func (c *Client) invoke(ctx context.Context, callee string, args []object.Value) (object.Value, error) {
	req := dynamic.NewMessage(schema.invokeRequest)
	setField(req, "name", callee)
	if len(args) > 0 {
		wire := make([]interface{}, len(args))
		for i, a := range args {
			m, err := encodeValue(a, c)
			if err != nil {
				return nil, err
			}
			wire[i] = m
		}
		setField(req, "args", wire)
	}

	resp, err := c.stub.InvokeRpc(ctx, schema.invoke, req)
	if err != nil {
		return nil, fmt.Errorf("remote: invoking %s: %w", callee, err)
	}
	msg, err := dynamic.AsDynamicMessage(resp)
	if err != nil {
		return nil, fmt.Errorf("remote: invoking %s: %w", callee, err)
	}
	result, _ := getField(msg, "result").(*dynamic.Message)
	if result == nil {
		return nil, fmt.Errorf("remote: %s returned no result", callee)
	}
	return decodeValue(result, c)
}

func (c *Client) encodeCallable(fn *object.Callable) (handle, error) {
	c.mu.Lock()
	id, held := c.handleIDs[fn]
	c.mu.Unlock()
	if held {
		return handle{id: id, name: fn.Name, arity: fn.Arity}, nil
	}
	if _, known := c.arity[fn.Name]; known {
		return handle{name: fn.Name, arity: fn.Arity}, nil
	}
	return handle{}, fmt.Errorf("remote: %s is not invocable on the library side", fn.Inspect())
}

func (c *Client) decodeCallable(h handle) (*object.Callable, error) {
	callee := h.id
	if callee == "" {
		callee = h.name
	}
	fn := &object.Callable{
		Name:  h.name,
		Arity: h.arity,
		Fn: func(args ...object.Value) (object.Value, error) {
			return c.invoke(context.Background(), callee, args)
		},
	}
	c.mu.Lock()
	c.handleIDs[fn] = h.id
	c.mu.Unlock()
	return fn, nil
}
