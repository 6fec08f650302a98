package main

import "github.com/ikl-data/loanpipe/cmd"

func main() {
	cmd.Execute()
}
