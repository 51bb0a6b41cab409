package main

import "pokeblog/cmd"

func main() {
	cmd.Execute()
}
