package main

import "github.com/mattyatea/esa-client/internal/cli"

func main() {
	cli.Execute()
}
