package main

import (
	"os"

	"github.com/quizforge/quizforge/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
