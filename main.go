package main

import "github.com/WrenRaming/tribsmesh/cmd"

func main() {
	cmd.Execute()
}
