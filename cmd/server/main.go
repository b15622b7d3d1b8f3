package main

import (
	"flag"
	"log"
	"log/slog"
	"net"
	"os"
	"panelpop/proto"
	"panelpop/server"

	"google.golang.org/grpc"
)

func main() {
	addr := flag.String("addr", ":9000", "listen address")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	defer lis.Close()
	s := grpc.NewServer()
	defer s.Stop()
	proto.RegisterPanelServiceServer(s, server.New(logger))

	logger.Info("starting server", "addr", *addr)
	if err := s.Serve(lis); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
