// cmd/uspa-randseq/main.go
package main

import (
	"uspa/internal/appshell"
	"uspa/internal/randseqapp"
)

func main() { appshell.Main(randseqapp.RunContext) }
