package main

import "netcollector/cmd"

func main() {
	cmd.Execute()
}
