package main

import "mspro-labs/lunch-picker/cmd"

func main() {
	cmd.Execute()
}
