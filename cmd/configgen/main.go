package main

import (
	"flag"
	"log"

	"github.com/danmuck/hdlcbody/internal/config"
)

func main() {
	output := flag.String("output", "cmd/hdlcd/config.toml", "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", "cmd/hdlcd/config.toml", "config path for validation")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		if _, err := config.Load(*input); err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated hdlcd config at %s", *input)
		return
	}

	if err := config.WriteTemplate(*output, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote hdlcd config template to %s", *output)
}
