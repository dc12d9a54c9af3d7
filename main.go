package main

import "github.com/mouse-blink/linesplit/cmd"

func main() {
	cmd.Execute()
}
