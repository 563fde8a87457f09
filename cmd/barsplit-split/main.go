// cmd/barsplit-split/main.go
package main

import (
	"barsplit/internal/appshell"
	"barsplit/internal/splitapp"
)

func main() {
	appshell.Main(splitapp.RunContext)
}
