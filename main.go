package main

import (
	"github.com/ezdiharweb/agency-api/cmd"
)

func main() {
	cmd.Execute()
}
