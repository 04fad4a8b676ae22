package main

import "github.com/catatsuy/methodtree/internal/cli"

func main() {
	cli.Execute()
}
