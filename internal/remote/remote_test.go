package remote

import (
	"context"
	"net"
	"strings"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/gridmind/gridil/internal/dsl"
	"github.com/gridmind/gridil/internal/object"
)

// startLibrary serves the grid DSL over an in-memory connection and
// returns a connected client.
func startLibrary(t *testing.T) *Client {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := NewServer(dsl.New())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.Serve(ctx, lis)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	conn, err := grpc.NewClient("passthrough:///library",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("grpc.NewClient() error = %v", err)
	}

	client, err := NewClient(ctx, conn)
	if err != nil {
		conn.Close()
		t.Fatalf("NewClient() error = %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestSignaturesMatchInProcess(t *testing.T) {
	client := startLibrary(t)

	local := dsl.New().Signatures()
	got := client.Signatures()
	if len(got) != len(local) {
		t.Fatalf("fetched %d signatures; want %d", len(got), len(local))
	}
	for i, sig := range got {
		want := local[i]
		if sig.Name != want.Name || sig.Return != want.Return {
			t.Fatalf("signature %d = %s -> %s; want %s -> %s",
				i, sig.Name, sig.Return, want.Name, want.Return)
		}
		if len(sig.Params) != len(want.Params) {
			t.Fatalf("%s has %d params; want %d", sig.Name, len(sig.Params), len(want.Params))
		}
		for j, p := range sig.Params {
			if p != want.Params[j] {
				t.Errorf("%s param %d = %+v; want %+v", sig.Name, j, p, want.Params[j])
			}
		}
	}
}

func TestConstantsMatchInProcess(t *testing.T) {
	client := startLibrary(t)

	local := dsl.New().Constants()
	got := client.Constants()
	if len(got) != len(local) {
		t.Fatalf("fetched %d constants; want %d", len(got), len(local))
	}
	for i, con := range got {
		want := local[i]
		if con.Name != want.Name || con.Tag != want.Tag {
			t.Errorf("constant %d = %s/%s; want %s/%s", i, con.Name, con.Tag, want.Name, want.Tag)
		}
		if !object.Equal(con.Value, want.Value) {
			t.Errorf("constant %s = %s; want %s", con.Name, con.Value.Inspect(), want.Value.Inspect())
		}
	}
}

func TestInvokeGrid(t *testing.T) {
	client := startLibrary(t)

	fn, ok := client.Callable("vmirror")
	if !ok {
		t.Fatal("Callable(vmirror) not found")
	}
	got, err := fn.Call(object.NewGrid([][]int{{1, 2}, {3, 4}}))
	if err != nil {
		t.Fatalf("vmirror error = %v", err)
	}
	want := object.NewGrid([][]int{{2, 1}, {4, 3}})
	if !object.Equal(got, want) {
		t.Errorf("vmirror = %s; want %s", got.Inspect(), want.Inspect())
	}
}

func TestComposedCallableRoundTrip(t *testing.T) {
	client := startLibrary(t)

	compose, ok := client.Callable("compose")
	if !ok {
		t.Fatal("Callable(compose) not found")
	}
	vmirror, _ := client.Callable("vmirror")
	hmirror, _ := client.Callable("hmirror")

	rot, err := compose.Call(vmirror, hmirror)
	if err != nil {
		t.Fatalf("compose error = %v", err)
	}
	fn, ok := rot.(*object.Callable)
	if !ok {
		t.Fatalf("compose returned %s; want a callable", rot.Kind())
	}
	if fn.Arity != 1 {
		t.Errorf("composed arity = %d; want 1", fn.Arity)
	}

	got, err := fn.Call(object.NewGrid([][]int{{1, 2}, {3, 4}}))
	if err != nil {
		t.Fatalf("composed call error = %v", err)
	}
	want := object.NewGrid([][]int{{4, 3}, {2, 1}})
	if !object.Equal(got, want) {
		t.Errorf("composed = %s; want %s", got.Inspect(), want.Inspect())
	}
}

func TestHandleAsArgument(t *testing.T) {
	client := startLibrary(t)

	compose, _ := client.Callable("compose")
	vmirror, _ := client.Callable("vmirror")
	hmirror, _ := client.Callable("hmirror")

	rot, err := compose.Call(vmirror, hmirror)
	if err != nil {
		t.Fatalf("compose error = %v", err)
	}

	apply, _ := client.Callable("apply")
	grids := object.NewTuple(
		object.NewGrid([][]int{{1, 2}}),
		object.NewGrid([][]int{{3, 4}}),
	)
	got, err := apply.Call(rot, grids)
	if err != nil {
		t.Fatalf("apply error = %v", err)
	}
	want := object.NewTuple(
		object.NewGrid([][]int{{2, 1}}),
		object.NewGrid([][]int{{4, 3}}),
	)
	if !object.Equal(got, want) {
		t.Errorf("apply = %s; want %s", got.Inspect(), want.Inspect())
	}
}

func TestInvokeRejectsUnknownName(t *testing.T) {
	client := startLibrary(t)

	if _, ok := client.Callable("transmogrify"); ok {
		t.Fatal("Callable(transmogrify) reported a stub for an unknown primitive")
	}

	_, err := client.invoke(context.Background(), "transmogrify", nil)
	if err == nil {
		t.Fatal("invoke(transmogrify) succeeded; want error")
	}
	if !strings.Contains(err.Error(), "unknown primitive") {
		t.Errorf("invoke error = %v; want unknown primitive", err)
	}
}

func TestInvokeSurvivesBadArguments(t *testing.T) {
	client := startLibrary(t)

	add, ok := client.Callable("add")
	if !ok {
		t.Fatal("Callable(add) not found")
	}
	if _, err := add.Call(object.NewGrid([][]int{{1}}), object.Integer(1)); err == nil {
		t.Fatal("add(grid, int) succeeded; want error")
	}

	// The server must keep answering after a rejected call.
	got, err := add.Call(object.Integer(2), object.Integer(3))
	if err != nil {
		t.Fatalf("add(2, 3) error = %v", err)
	}
	if !object.Equal(got, object.Integer(5)) {
		t.Errorf("add(2, 3) = %s; want 5", got.Inspect())
	}
}

func TestWireRoundTripKinds(t *testing.T) {
	client := startLibrary(t)

	identity, ok := client.Callable("identity")
	if !ok {
		t.Fatal("Callable(identity) not found")
	}

	values := []object.Value{
		object.Boolean(true),
		object.Integer(-7),
		object.Pair{I: 2, J: 3},
		object.NewGrid([][]int{{0, 9}, {5, 5}}),
		object.NewIntSet([]int{3, 1, 4}),
		object.NewIndices([]object.Pair{{I: 0, J: 0}, {I: 1, J: 2}}),
		object.NewObject([]object.Cell{
			{Value: 4, Loc: object.Pair{I: 0, J: 1}},
			{Value: 7, Loc: object.Pair{I: 2, J: 2}},
		}),
		object.NewTuple(object.Integer(1), object.NewTuple(object.Integer(2))),
	}
	for _, v := range values {
		got, err := identity.Call(v)
		if err != nil {
			t.Fatalf("identity(%s) error = %v", v.Inspect(), err)
		}
		if !object.Equal(got, v) {
			t.Errorf("identity(%s) = %s", v.Inspect(), got.Inspect())
		}
	}
}
