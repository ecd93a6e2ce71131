package main

import "mirrorcheck/cmd"

func main() {
	cmd.Execute()
}
