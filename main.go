package main

import "showlink/cmd"

func main() {
	cmd.Execute()
}
