package main

import (
	"os"

	"github.com/firefly-engineering/berth-ctl/cmd"
	"github.com/firefly-engineering/berth-ctl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
