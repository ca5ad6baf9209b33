// Package proto holds the messages and gRPC stubs generated from
// repovault.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative repovault.proto
