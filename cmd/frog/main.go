package main

import (
	"github.com/mengxi-ream/read-frog-server/pkg/cli"
)

func main() {
	cli.Execute()
}
