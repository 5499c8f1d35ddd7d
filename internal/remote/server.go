package remote

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/google/uuid"
	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/grpc"

	"github.com/gridmind/gridil/internal/catalog"
	"github.com/gridmind/gridil/internal/ctxlog"
	"github.com/gridmind/gridil/internal/object"
)

// Server exposes a catalog.Library over gRPC. Callables produced during
// the session (composed functions, bound forms) stay on the server behind
// uuid handles and live until the server stops.
type Server struct {
	lib     catalog.Library
	grpc    *grpc.Server
	handles handleTable
}

// NewServer wraps a library. Serve must be called before clients connect.
func NewServer(lib catalog.Library) *Server {
	s := &Server{
		lib:  lib,
		grpc: grpc.NewServer(),
	}
	s.grpc.RegisterService(s.serviceDesc(), s)
	return s
}

// ListenAndServe listens on addr and serves until ctx is cancelled or the
// listener fails.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("remote: listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve accepts connections on lis until ctx is cancelled or the listener
// fails. Cancellation drains in-flight calls before returning.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	ctxlog.From(ctx).Info("remote: serving library", "addr", lis.Addr().String())
	go func() {
		<-ctx.Done()
		s.grpc.GracefulStop()
	}()
	if err := s.grpc.Serve(lis); err != nil {
		return fmt.Errorf("remote: %w", err)
	}
	return nil
}

// Stop drains in-flight calls and shuts the server down.
func (s *Server) Stop() { s.grpc.GracefulStop() }

// serviceDesc builds the service registration by hand; the schema is
// dynamic, so there is no generated registration to lean on.
func (s *Server) serviceDesc() *grpc.ServiceDesc {
	return &grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*interface{})(nil),
		Methods: []grpc.MethodDesc{
			{MethodName: "ListSignatures", Handler: handleListSignatures},
			{MethodName: "ListConstants", Handler: handleListConstants},
			{MethodName: "Invoke", Handler: handleInvoke},
		},
		Metadata: protoFile,
	}
}

func handleListSignatures(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
	if err := dec(dynamic.NewMessage(schema.empty)); err != nil {
		return nil, err
	}
	return srv.(*Server).listSignatures(ctx)
}

func handleListConstants(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
	if err := dec(dynamic.NewMessage(schema.empty)); err != nil {
		return nil, err
	}
	return srv.(*Server).listConstants(ctx)
}

func handleInvoke(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
	req := dynamic.NewMessage(schema.invokeRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(*Server).invoke(ctx, req)
}

func (s *Server) listSignatures(ctx context.Context) (*dynamic.Message, error) {
	sigs := s.lib.Signatures()
	list := make([]interface{}, len(sigs))
	for i, sig := range sigs {
		m := dynamic.NewMessage(schema.signature)
		setField(m, "name", sig.Name)
		if len(sig.Params) > 0 {
			params := make([]interface{}, len(sig.Params))
			for j, p := range sig.Params {
				pm := dynamic.NewMessage(schema.param)
				setField(pm, "name", p.Name)
				setField(pm, "tag", p.Tag)
				params[j] = pm
			}
			setField(m, "params", params)
		}
		setField(m, "ret", sig.Return)
		list[i] = m
	}
	resp := dynamic.NewMessage(schema.signatureList)
	if len(list) > 0 {
		setField(resp, "signatures", list)
	}
	ctxlog.From(ctx).Debug("remote: listed signatures", "count", len(list))
	return resp, nil
}

func (s *Server) listConstants(ctx context.Context) (*dynamic.Message, error) {
	resp := dynamic.NewMessage(schema.constantList)
	provider, ok := s.lib.(catalog.ConstantProvider)
	if !ok {
		return resp, nil
	}
	consts := provider.Constants()
	list := make([]interface{}, len(consts))
	for i, c := range consts {
		m := dynamic.NewMessage(schema.constant)
		setField(m, "name", c.Name)
		setField(m, "tag", c.Tag)
		v, err := encodeValue(c.Value, s)
		if err != nil {
			return nil, fmt.Errorf("remote: constant %s: %w", c.Name, err)
		}
		setField(m, "value", v)
		list[i] = m
	}
	if len(list) > 0 {
		setField(resp, "constants", list)
	}
	ctxlog.From(ctx).Debug("remote: listed constants", "count", len(list))
	return resp, nil
}

func (s *Server) invoke(ctx context.Context, req *dynamic.Message) (*dynamic.Message, error) {
	name, _ := getField(req, "name").(string)
	fn, err := s.callee(name)
	if err != nil {
		return nil, err
	}

	raw, _ := getField(req, "args").([]interface{})
	args := make([]object.Value, len(raw))
	for i, r := range raw {
		m, ok := r.(*dynamic.Message)
		if !ok {
			return nil, fmt.Errorf("remote: argument %d is not a value message", i)
		}
		v, err := decodeValue(m, s)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	result, err := safeCall(fn, args)
	if err != nil {
		return nil, err
	}

	out, err := encodeValue(result, s)
	if err != nil {
		return nil, err
	}
	resp := dynamic.NewMessage(schema.invokeResponse)
	setField(resp, "result", out)
	ctxlog.From(ctx).Debug("remote: invoked", "name", name, "args", len(args))
	return resp, nil
}

// callee resolves an invocation target. Handle ids are uuids and cannot
// collide with primitive identifiers, so handles are checked first.
func (s *Server) callee(name string) (*object.Callable, error) {
	if fn, ok := s.handles.get(name); ok {
		return fn, nil
	}
	if fn, ok := s.lib.Callable(name); ok {
		return fn, nil
	}
	return nil, fmt.Errorf("remote: unknown primitive or handle %q", name)
}

// safeCall converts panics from primitive internals into ordinary errors,
// keeping a malformed invocation from taking the server down.
func safeCall(fn *object.Callable, args []object.Value) (v object.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("remote: %s: panic: %v", fn.Inspect(), r)
		}
	}()
	return fn.Call(args...)
}

func (s *Server) encodeCallable(fn *object.Callable) (handle, error) {
	return handle{id: s.handles.put(fn), name: fn.Name, arity: fn.Arity}, nil
}

func (s *Server) decodeCallable(h handle) (*object.Callable, error) {
	if h.id != "" {
		if fn, ok := s.handles.get(h.id); ok {
			return fn, nil
		}
		return nil, fmt.Errorf("remote: unknown callable handle %s", h.id)
	}
	fn, ok := s.lib.Callable(h.name)
	if !ok {
		return nil, fmt.Errorf("remote: unknown primitive %q", h.name)
	}
	return fn, nil
}

// handleTable stores session callables by uuid.
type handleTable struct {
	mu sync.Mutex
	m  map[string]*object.Callable
}

func (t *handleTable) put(fn *object.Callable) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.m == nil {
		t.m = make(map[string]*object.Callable)
	}
	id := uuid.NewString()
	t.m[id] = fn
	return id
}

func (t *handleTable) get(id string) (*object.Callable, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn, ok := t.m[id]
	return fn, ok
}
