package main

import "mixtape/internal/cli"

func main() {
	cli.Execute()
}
