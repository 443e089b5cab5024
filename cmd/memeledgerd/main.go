package main

import "github.com/LeJamon/goMemeLedger/internal/cli"

func main() {
	cli.Execute()
}
