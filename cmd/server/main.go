package main

import "restopos/internal/app/server"

func main() {
	server.Run()
}
