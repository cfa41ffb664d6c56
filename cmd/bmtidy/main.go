package main

import "github.com/arthur-debert/bmtidy/internal/cli"

func main() {
	cli.Execute()
}
