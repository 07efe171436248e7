package main

import "roadmap/cmd/roadmap-cli/cmd"

func main() {
	cmd.Execute()
}
