package main

import "github.com/timvw/gh-ghq-cd/cmd"

func main() {
	cmd.Execute()
}
