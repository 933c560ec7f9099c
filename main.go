package main

import "github.com/octanesh/octane/cmd"

func main() {
	cmd.Execute()
}
