package main

import "github.com/nickcat1/keepc/cmd"

func main() {
	cmd.Execute()
}
