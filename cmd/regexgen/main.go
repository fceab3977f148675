package main

import (
	"fmt"

	"github.com/coregx/regexgen/internal/runner"
)

func main() {
	cliOpts := runner.ParseFlags()
	cases := cliOpts.ResolveCases()
	pattern := cliOpts.Build(cases)
	fmt.Println(pattern)
}
