// File: cmd/service/main.go
package main

import (
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// .env 不存在時沿用既有環境變數
	_ = godotenv.Load()

	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
