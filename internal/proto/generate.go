// Package proto holds the generated songregistry.v1 messages and the
// Registry gRPC service stubs.
package proto

//go:generate protoc -I ../../api --go_out=../.. --go_opt=module=github.com/dmitrijs2005/songregistry --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/songregistry songregistry/v1/registry.proto
