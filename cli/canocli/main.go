package main

import (
	"log"

	"canopy/cli"
)

func main() {
	if err := cli.Init(); err != nil {
		log.Fatalf("failed to initialize commands: %v", err)
	}

	cli.Execute()
}
