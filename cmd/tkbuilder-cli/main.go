package main

import "tkbuilder/cmd/tkbuilder-cli/cmd"

func main() {
	cmd.Execute()
}
