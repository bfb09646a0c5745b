package main

import (
	"github.com/silicore/go-seqmem/pkg/cmd"
)

func main() {
	cmd.Execute()
}
