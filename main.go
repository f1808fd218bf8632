package main

import "common-games/cmd"

func main() {
	cmd.Execute()
}
