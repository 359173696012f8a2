package main

import "ccline/cmd"

func main() {
	cmd.Execute()
}
