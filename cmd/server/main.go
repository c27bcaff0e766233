package main

import (
	"github.com/nfrund/gatehouse/internal/server"
)

func main() {
	s := server.New()
	s.RegisterRoutes()
	s.Start()
}
