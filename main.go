package main

import "github.com/dotcommander/codemess/cmd"

func main() {
	cmd.Execute()
}
