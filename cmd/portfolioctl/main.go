package main

import (
	"os"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/cli"
)

func main() {
	os.Exit(cli.New().Execute(os.Args[1:]))
}
