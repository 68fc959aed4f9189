package main

import "github.com/dawbrowser/daw-browser/internal/cli"

func main() {
	cli.Execute()
}
