package main

import "badger-probe/cmd"

func main() {
	cmd.Execute()
}
