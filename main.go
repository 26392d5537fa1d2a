package main

import (
	"os"

	"github.com/leonardinius/goghost/cmd"
)

func main() {
	app := cmd.NewGhostApp()
	os.Exit(app.Main(os.Args[1:]))
}
