package main

import "github.com/viant/structwalk/cmd/structwalk/cmd"

func main() {
	cmd.Execute()
}
