package main

import (
	"github.com/neuronlabs/emodel/internal/cli"
)

func main() {
	cli.Execute()
}
