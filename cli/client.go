package cli

import (
	"crypto/tls"
	"log"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"canopy/api"
)

var apiClient api.CommitmentClient

// Client news or returns a commitment client
func Client() api.CommitmentClient {
	if apiClient == nil {
		creds := insecure.NewCredentials()
		if secureConn {
			creds = credentials.NewTLS(&tls.Config{})
		}

		conn, err := grpc.Dial(endpoint, grpc.WithTransportCredentials(creds))
		if err != nil {
			log.Fatalf("failed to connect to %s: %v", endpoint, err)
		}

		apiClient = api.NewCommitmentClient(conn)
	}

	return apiClient
}
