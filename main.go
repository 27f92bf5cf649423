package main

import "github.com/beardbaba/KuchTohHai/cmd"

func main() {
	cmd.Execute()
}
