package main

import "drip/cmd"

func main() {
	cmd.Execute()
}
