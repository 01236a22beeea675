package main

import "github.com/KaramelBytes/tablescope-cli/cmd"

func main() {
	cmd.Execute()
}
