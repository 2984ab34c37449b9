package main

import "github.com/aalvaropc/bowgen/internal/cli"

func main() {
	cli.Execute()
}
