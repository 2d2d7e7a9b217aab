package main

import (
	"github.com/mchmarny/mch/pkg/cli"
)

func main() {
	cli.Execute()
}
