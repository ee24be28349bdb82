package main

import (
	"context"
	"os"

	"github.com/7blacky7/termkit/cmd"
)

func main() {
	if err := cmd.NewCLI().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
