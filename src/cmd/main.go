package main

import (
	cfg "github.com/Dahreau/buy-01/src/configuration"
	server "github.com/Dahreau/buy-01/src/server"
)

func main() {
	config := cfg.ReadProperties()
	server.RunServer(config)
}
