package main

import (
	"dpx-validator/cli"
)

func main() {
	cli.Start()
}
