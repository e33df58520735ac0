package main

import "github.com/AshhKetchup/Rit/cmd/rit/cmd"

func main() {
	cmd.Execute()
}
