package main

import (
	"log"

	"github.com/mengxi-ream/read-frog-server/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
