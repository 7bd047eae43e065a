package main

import "github.com/lintgate/fnlen/cmd"

func main() {
	cmd.Execute()
}
