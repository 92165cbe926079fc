package main

import "github.com/theirongolddev/finledger/cmd"

func main() {
	cmd.Execute()
}
