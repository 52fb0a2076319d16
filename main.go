// main.go
//
// Entry point for the disk-sim CLI; all commands live in cmd/.

package main

import (
	"github.com/disk-sim/disk-sim/cmd"
)

func main() {
	cmd.Execute()
}
