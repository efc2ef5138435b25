package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"google.golang.org/grpc"

	"xdao.co/vbmeta/grpcstore"
	"xdao.co/vbmeta/storage/localfs"
)

func main() {
	fs := flag.NewFlagSet("xdao-vbmetad", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7787", "listen address")
	storeDir := fs.String("store", "", "store root directory (required)")

	_ = fs.Parse(os.Args[1:])
	if *storeDir == "" {
		fmt.Fprintln(os.Stderr, "xdao-vbmetad: --store is required")
		os.Exit(2)
	}

	store, err := localfs.New(*storeDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer()
	grpcstore.RegisterImageStoreServer(s, &grpcstore.Server{Store: store})

	fmt.Fprintf(os.Stderr, "xdao-vbmetad listening on %s (store=%s)\n", lis.Addr().String(), *storeDir)
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
