package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	sceneID := flag.String("scene", server.DefaultScene, "Scene rendered when a request names none (built-in id or json:<name>)")
	depth := flag.Int("depth", 0, "Reflection/refraction bounce limit when a request names none (0 = scene default)")
	flag.Parse()

	webServer, err := server.NewServer(*port).WithDefaultScene(*sceneID)
	if err != nil {
		log.Printf("Error: %v (built-in scenes: %v)", err, builtinIDs())
		os.Exit(1)
	}
	if webServer, err = webServer.WithDefaultDepth(*depth); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}

	log.Printf("Whitted Raytracer Web Server")
	log.Printf("Default scene %q, max depth %s", *sceneID, depthLabel(*depth))
	log.Printf("Visit http://localhost:%d to start rendering", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}

func builtinIDs() []string {
	var ids []string
	for _, b := range scene.Builtins() {
		ids = append(ids, b.ID)
	}
	return ids
}

func depthLabel(depth int) string {
	if depth == 0 {
		return "from scene"
	}
	return strconv.Itoa(depth)
}
