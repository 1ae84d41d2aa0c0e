package main

import "howtouseai-backend/cmd/commands"

func main() {
	commands.Execute()
}
