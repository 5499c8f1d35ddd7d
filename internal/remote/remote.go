// Package remote carries a primitive library over gRPC. The server side
// exposes any catalog.Library; the client side implements catalog.Library,
// so the engine cannot tell a remote library from an in-process one.
//
// The wire schema is embedded below and parsed with protoparse at package
// load. All traffic uses dynamic messages; no generated code is involved.
// Function-typed values cannot cross the wire directly, so the server
// keeps them behind uuid handles and the client invokes them by handle id.
package remote

import (
	"fmt"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/jhump/protoreflect/dynamic"
)

const (
	protoFile   = "gridil/library.proto"
	serviceName = "gridil.library.Library"
)

const protoSource = `
syntax = "proto3";

package gridil.library;

service Library {
  rpc ListSignatures (Empty) returns (SignatureList);
  rpc ListConstants (Empty) returns (ConstantList);
  rpc Invoke (InvokeRequest) returns (InvokeResponse);
}

message Empty {}

message Param {
  string name = 1;
  string tag = 2;
}

message Signature {
  string name = 1;
  repeated Param params = 2;
  string ret = 3;
}

message SignatureList {
  repeated Signature signatures = 1;
}

message Constant {
  string name = 1;
  string tag = 2;
  Value value = 3;
}

message ConstantList {
  repeated Constant constants = 1;
}

// InvokeRequest names either a library primitive or a callable handle a
// previous Invoke returned. Handle ids are uuids and cannot collide with
// primitive identifiers.
message InvokeRequest {
  string name = 1;
  repeated Value args = 2;
}

message InvokeResponse {
  Value result = 1;
}

// Value carries one runtime value. The kind field selects which of the
// remaining fields holds the payload.
message Value {
  string kind = 1;
  bool truth = 2;           // BOOLEAN
  int64 number = 3;         // INTEGER
  repeated int64 ints = 4;  // PAIR (i, j), CELL (value, i, j), INTEGER_SET
  repeated Row rows = 5;    // GRID
  repeated Value elems = 6; // OBJECT, OBJECTS, INDICES, INDICES_SET, TUPLE
  Handle fn = 7;            // CALLABLE
}

message Row {
  repeated int64 cells = 1;
}

// Handle names a callable. A populated id refers to a callable the server
// holds for this session; an empty id refers to a primitive by name.
message Handle {
  string id = 1;
  string name = 2;
  int64 arity = 3;
}
`

// schemaInfo holds the parsed descriptors every conversion needs.
type schemaInfo struct {
	listSignatures *desc.MethodDescriptor
	listConstants  *desc.MethodDescriptor
	invoke         *desc.MethodDescriptor

	empty          *desc.MessageDescriptor
	param          *desc.MessageDescriptor
	signature      *desc.MessageDescriptor
	signatureList  *desc.MessageDescriptor
	constant       *desc.MessageDescriptor
	constantList   *desc.MessageDescriptor
	invokeRequest  *desc.MessageDescriptor
	invokeResponse *desc.MessageDescriptor
	value          *desc.MessageDescriptor
	row            *desc.MessageDescriptor
	handle         *desc.MessageDescriptor
}

var schema = compileSchema()

func compileSchema() *schemaInfo {
	parser := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{protoFile: protoSource}),
	}
	fds, err := parser.ParseFiles(protoFile)
	if err != nil {
		panic(fmt.Sprintf("remote: embedded schema: %v", err))
	}
	fd := fds[0]
	svc := fd.FindService(serviceName)
	if svc == nil {
		panic("remote: embedded schema: service " + serviceName + " missing")
	}
	return &schemaInfo{
		listSignatures: mustMethod(svc, "ListSignatures"),
		listConstants:  mustMethod(svc, "ListConstants"),
		invoke:         mustMethod(svc, "Invoke"),
		empty:          mustMessage(fd, "gridil.library.Empty"),
		param:          mustMessage(fd, "gridil.library.Param"),
		signature:      mustMessage(fd, "gridil.library.Signature"),
		signatureList:  mustMessage(fd, "gridil.library.SignatureList"),
		constant:       mustMessage(fd, "gridil.library.Constant"),
		constantList:   mustMessage(fd, "gridil.library.ConstantList"),
		invokeRequest:  mustMessage(fd, "gridil.library.InvokeRequest"),
		invokeResponse: mustMessage(fd, "gridil.library.InvokeResponse"),
		value:          mustMessage(fd, "gridil.library.Value"),
		row:            mustMessage(fd, "gridil.library.Row"),
		handle:         mustMessage(fd, "gridil.library.Handle"),
	}
}

func mustMethod(svc *desc.ServiceDescriptor, name string) *desc.MethodDescriptor {
	md := svc.FindMethodByName(name)
	if md == nil {
		panic("remote: embedded schema: missing method " + name)
	}
	return md
}

func mustMessage(fd *desc.FileDescriptor, name string) *desc.MessageDescriptor {
	md := fd.FindMessage(name)
	if md == nil {
		panic("remote: embedded schema: missing message " + name)
	}
	return md
}

func setField(m *dynamic.Message, field string, v interface{}) {
	m.SetField(m.GetMessageDescriptor().FindFieldByName(field), v)
}

func getField(m *dynamic.Message, field string) interface{} {
	return m.GetField(m.GetMessageDescriptor().FindFieldByName(field))
}
