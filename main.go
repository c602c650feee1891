package main

import (
	"docnav/cmd"
)

func main() {
	cmd.Execute()
}
