package main

import "schema-context/internal/cli"

func main() {
	cli.Execute()
}
