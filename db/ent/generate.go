package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	gen.AddAcronym("DNI")
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/ulieet/NeuroSoft/gen/ent",
			Schema:  "github.com/ulieet/NeuroSoft/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}