package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/mcosta-dev/portfolio/cmd"
)

func main() {
	cmd.Execute()
}
