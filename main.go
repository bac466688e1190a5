package main

import "github.com/gnames/gnsyn/cmd"

func main() {
	cmd.Execute()
}
