package main

import "github.com/sarchlab/numseq/cmd"

func main() {
	cmd.Execute()
}
