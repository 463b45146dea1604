package main

import (
	"context"
	"log"

	"github.com/invtrack/invtrack/internal/app/cli"
)

func main() {
	if err := cli.Run(context.Background()); err != nil {
		log.Fatalf("invtrack exited with error: %v", err)
	}
}
