package main

import (
	"errors"
	"flag"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"canopy/api"
	"canopy/log"
	"canopy/storage"
)

var (
	tls      = flag.Bool("tls", false, "Connection uses TLS if true, else plain TCP")
	certFile = flag.String("cert_file", "", "The TLS cert file")
	keyFile  = flag.String("key_file", "", "The TLS key file")
	dbDir    = flag.String("db_dir", "canopy.db", "The tree store directory")
	logPath  = flag.String("log_path", "", "Additional log output file")
	port     = flag.Int("port", 10000, "The server port")
)

func main() {
	flag.Parse()

	logger := log.New(*logPath)
	defer func() { _ = logger.Sync() }()

	db, err := storage.NewLevelDB(*dbDir)
	if err != nil {
		logger.Fatalw("failed to open db", "dir", *dbDir, "err", err)
	}
	defer func() { _ = db.Close() }()

	store := storage.NewTreeStore(db)

	tree, err := store.Load()
	switch {
	case errors.Is(err, storage.ErrEmpty):
		logger.Infow("no saved tree, waiting for a build")
		tree = nil
	case err != nil:
		logger.Fatalw("failed to load saved tree", "err", err)
	default:
		logger.Infow("loaded saved tree", "leaves", tree.LeafCount(), "nodes", tree.Size())
	}

	lis, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", *port))
	if err != nil {
		logger.Fatalw("failed to listen", "port", *port, "err", err)
	}

	var opts []grpc.ServerOption
	if *tls {
		creds, err := credentials.NewServerTLSFromFile(*certFile, *keyFile)
		if err != nil {
			logger.Fatalw("failed to load credentials", "err", err)
		}
		opts = []grpc.ServerOption{grpc.Creds(creds)}
	}

	grpcServer := grpc.NewServer(opts...)
	api.RegisterCommitmentServer(grpcServer, api.NewServer(store, tree, logger))

	logger.Infow("serving", "port", *port)
	if err := grpcServer.Serve(lis); err != nil {
		logger.Errorw("server stopped", "err", err)
	}
}
