package main

import (
	"log"

	"github.td.teradata.com/sandbox/elite-console/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
