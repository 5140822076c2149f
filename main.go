package main

import "web/pinmap/cmd"

func main() {
	cmd.Execute()
}
