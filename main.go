package main

import "bolt-manager/cmd"

func main() {
	cmd.Execute()
}
