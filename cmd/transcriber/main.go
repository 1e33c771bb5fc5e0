package main

import "gemini-transcriber/cmd/transcriber/cmd"

func main() {
	cmd.Execute()
}
