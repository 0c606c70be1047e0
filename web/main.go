package main

import (
	"flag"
	"log"
	"os"

	"github.com/polyfan/go-fan-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to run the server on")
	flag.Parse()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	srv := server.NewServer(*port, logger)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
