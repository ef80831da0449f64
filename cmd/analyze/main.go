package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cognicore/smartseg/pkg/smartseg/config"
	"github.com/cognicore/smartseg/pkg/smartseg/token"
)

func main() {
	var (
		configPath = flag.String("config", "", "Configuration file (optional)")
		text       = flag.String("text", "", "Text to analyze")
		filePath   = flag.String("f", "", "File to analyze (- for stdin)")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal("Failed to load configuration: ", err)
		}
		cfg = loaded
	}

	input := *text
	switch {
	case *filePath == "-" && input == "":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal("Failed to read stdin: ", err)
		}
		input = string(data)
	case *filePath != "" && input == "":
		data, err := os.ReadFile(*filePath)
		if err != nil {
			log.Fatal("Failed to read input file: ", err)
		}
		input = string(data)
	case input == "":
		log.Fatal("--text or -f required")
	}

	analyzer, err := cfg.BuildAnalyzer()
	if err != nil {
		log.Fatal("Failed to build analyzer: ", err)
	}

	pipeline, err := analyzer.BuildPipeline(input)
	if err != nil {
		log.Fatal("Failed to build pipeline: ", err)
	}

	tokens, err := token.Drain(pipeline.Tokens())
	if err != nil {
		log.Fatal("Analysis failed: ", err)
	}

	for i, tok := range tokens {
		fmt.Printf("%4d  [%4d,%4d)  +%d  %s\n", i, tok.Start, tok.End, tok.PosInc, tok.Text)
	}
	fmt.Printf("%d tokens\n", len(tokens))
}
