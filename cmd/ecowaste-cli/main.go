package main

import "github.com/ecowaste/site/cmd/ecowaste-cli/cmd"

func main() {
	cmd.Execute()
}
