package main

import (
	"github.com/benedict-erwin/soc-dashboard/cmd"
)

// main runs the dashboard CLI
func main() {
	cmd.Execute()
}
