// Command nice runs a program with an adjusted scheduling priority.
package main

import (
	"os"

	"github.com/rcarmo/go-nice/pkg/applets/nice"
	"github.com/rcarmo/go-nice/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(nice.Run(stdio, os.Args))
}
