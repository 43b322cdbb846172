package main

import (
	_ "github.com/joho/godotenv/autoload"

	"qrdesk/internal/cli"
)

func main() {
	cli.Execute()
}
