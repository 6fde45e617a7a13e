package main

import (
	"log"

	"github.com/Sillem/zone2-polar-flow-analyzer/internal/cli"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	return cli.NewRootCmd().Execute()
}
