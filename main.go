package main

import "github.com/theirongolddev/pbudget/cmd"

func main() {
	cmd.Execute()
}
