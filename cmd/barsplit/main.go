// cmd/barsplit/main.go
package main

import (
	"barsplit/internal/app"
	"barsplit/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
