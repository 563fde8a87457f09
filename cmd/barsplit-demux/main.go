// cmd/barsplit-demux/main.go
package main

import (
	"barsplit/internal/appshell"
	"barsplit/internal/demuxapp"
)

func main() {
	appshell.Main(demuxapp.RunContext)
}
