package main

import "github.com/mouse-blink/bannerfmt/cmd"

func main() {
	cmd.Execute()
}
