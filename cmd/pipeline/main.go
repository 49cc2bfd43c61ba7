package main

import "ingredient-intelligence/internal/cmd"

func main() {
	cmd.Execute()
}
