package main

import "github.com/cbout22/scaffold/internal/cli"

func main() {
	cli.Execute()
}
