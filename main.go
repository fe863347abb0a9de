package main

import "github.com/arbor-dot/htmldot/cmd"

func main() {
	cmd.Execute()
}
