package main

import "github.com/minimarket/admin-api/cmd/posctl/commands"

func main() {
	commands.Execute()
}
