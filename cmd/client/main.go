package main

import "convertor/cmd/client/cmd"

func main() {
	cmd.Execute()
}
