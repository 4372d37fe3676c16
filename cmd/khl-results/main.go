package main

import "github.com/SubFearix/khl-results/internal/cli"

func main() {
	cli.Execute()
}
