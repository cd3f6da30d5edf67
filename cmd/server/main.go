package main

import "evalhub/internal/app/server"

func main() {
	server.Run()
}
