package main

import (
	"os"

	"github.com/taskautomator/backend/automatorservice"
)

func main() {
	if err := automatorservice.Run(); err != nil {
		os.Exit(1)
	}
}
