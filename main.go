package main

import (
	"github.com/PaisanX/PaisanX-Backend/api"
)

var envPath string = "."

func main() {
	server := api.NewServer(envPath)
	server.Start()
}
