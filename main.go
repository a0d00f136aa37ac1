package main

import "github.com/seanyu/seanyu-space/cmd"

func main() {
	cmd.Execute()
}
