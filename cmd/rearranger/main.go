package main

import "rearranger/internal/cli"

func main() {
	cli.Execute()
}
