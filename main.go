package main

import (
	"os"

	"github.com/Greengage-project/interlinker-ceditor/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
