package main

import "github.com/talx-hub/rez-booking/internal/service"

func main() {
	service.RunServer()
}
