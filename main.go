package main

import "budgie/cmd"

func main() {
	cmd.Execute()
}
