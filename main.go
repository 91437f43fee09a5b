package main

import "github.com/pausequest/pausequest-cli/cmd"

func main() {
	cmd.Execute()
}
