package main

import "clipsplit/cmd"

func main() {
	cmd.Execute()
}
