// cmd/motifmark/main.go
package main

import (
	"motifmark/internal/app"
	"motifmark/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
