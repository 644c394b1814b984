package main

import "github.com/colobot/colobot-sub009/cmd"

func main() {
	cmd.Execute()
}
