package main

import "github.com/jfmyers9/tunecheck/cmd"

func main() {
	cmd.Execute()
}
