package main

import "github.com/clinicfinder/backend/cmd/clinicctl/commands"

func main() {
	commands.Execute()
}
