package main

import "github.com/rcgarage/rcprogram-manager-go/cmd"

func main() {
	cmd.Execute()
}
