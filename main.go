package main

import "github.com/tesh254/chatdown/cmd"

func main() {
	cmd.Execute()
}
