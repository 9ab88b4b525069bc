// cmd/dlbench/main.go
package main

import (
	cmd "github.com/boltdm/dlbench/internal/cli"
)

// main starts the dlbench CLI application by delegating to the cobra root
// command. It does not take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
