package main

import (
	"github.com/homeline/sonoctl/internal/cli"
)

func main() {
	cli.ExecuteSonoplay()
}
