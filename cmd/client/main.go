package main

import "watchlater/cmd/client/cmd"

func main() {
	cmd.Execute()
}
