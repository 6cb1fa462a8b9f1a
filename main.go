package main

import (
	"log"
	"os"

	"tsumeshogi-solver/internal/cli"
)

func main() {
	log.SetFlags(0)
	if err := cli.Run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}
