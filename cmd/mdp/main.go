package main

import "github.com/Tourelou/mdp/cmd/mdp/cmd"

func main() {
	cmd.Execute()
}
