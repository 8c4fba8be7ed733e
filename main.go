package main

import (
	"github.com/joho/godotenv"
	"github.com/jsphweid/fifths/cmd"
	"github.com/jsphweid/fifths/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using environment variables", nil)
	}
	cmd.Execute()
}
