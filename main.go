package main

import "github.com/theirongolddev/kakeibo/cmd"

func main() {
	cmd.Execute()
}
