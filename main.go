package main

import (
	"github.com/pyneda/soapgen/cmd"
)

func main() {
	cmd.Execute()
}
