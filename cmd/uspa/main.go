// cmd/uspa/main.go
package main

import (
	"uspa/internal/app"
	"uspa/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
