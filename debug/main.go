package main

import (
	"fmt"
	"log"
	"os"

	"github.com/netisu/objview"
)

func main() {
	path := "objects.obj"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	fmt.Println("--- STARTING DEBUG ---")
	model, err := objview.LoadOBJ(path)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("--- MODEL STATS ---\n")
	fmt.Printf("Vertices: %d\n", len(model.Vertices))
	fmt.Printf("Objects: %d\n", model.Len())
	fmt.Printf("Skipped lines: %d\n", len(model.Warnings))
	for _, w := range model.Warnings {
		fmt.Printf("  %s\n", w)
	}

	for _, name := range model.Names() {
		obj, _ := model.Lookup(name)
		fmt.Printf("--- %s ---\n", name)
		fmt.Printf("Faces: %d\n", len(obj.Faces))
		fmt.Printf("Face indices: %d\n", obj.IndexCount())

		box, ok := objview.Bounds(obj, model.Vertices)
		if !ok {
			fmt.Printf("Object references no valid vertex\n")
			continue
		}
		fmt.Printf("Bounding Box Min: %v\n", box.Min)
		fmt.Printf("Bounding Box Max: %v\n", box.Max)
		fmt.Printf("Bounding Box Center: %v\n", box.Center())

		cam := objview.DefaultCamera()
		if d := box.Center().Sub(cam.Center).Len(); d > cam.Far-cam.Eye.Z() {
			fmt.Printf("Object is outside the default camera range (%.2f from target)\n", d)
		}
	}
}
