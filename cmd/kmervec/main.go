// cmd/kmervec/main.go
package main

import (
	"kmervec/internal/app"
	"kmervec/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
