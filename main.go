package main

import "github.com/kamusis/quill-cli/cmd"

func main() {
	cmd.Execute()
}
