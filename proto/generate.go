// Package proto holds the mining service contract. Generated code is
// produced by protoc into this package.
package proto

//go:generate protoc --go_out=paths=source_relative:. --go-grpc_out=paths=source_relative:. mining.proto
