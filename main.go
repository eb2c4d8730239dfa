package main

import (
	"github.com/stellarsql/stellar/cmd"
)

func main() {
	cmd.Execute()
}
