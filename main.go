package main

import (
	"mutabaah.dev/backend/cmd/app"
)

func main() {
	app.Run()
}
