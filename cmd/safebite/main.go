package main

import "github.com/nfrund/safebite/cmd/safebite/cmd"

func main() {
	cmd.Execute()
}
