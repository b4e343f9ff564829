package main

import "github.com/avrilov/stride/cmd/stride/root"

func main() {
	root.Execute()
}
