package main

import "github.com/instituto-alma/server/cmd/server/cmd"

func main() {
	cmd.Execute()
}
