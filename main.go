package main

import "github.com/gabiest/hostsdash/cmd"

func main() {
	cmd.Execute()
}
