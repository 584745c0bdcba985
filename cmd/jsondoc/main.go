package main

import (
	"flag"
	"fmt"
	"os"

	jsondoc "github.com/espkit/jsondoc/v2"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "check":
		checkCmd(os.Args[2:])
	case "fmt":
		fmtCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "jsondoc CLI\n\nUsage:\n  jsondoc check [-yaml] [-depth N] file...\n  jsondoc fmt [-yaml] [-compact] file...")
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var asYAML bool
	var depth int
	fs.BoolVar(&asYAML, "yaml", false, "treat inputs as YAML")
	fs.IntVar(&depth, "depth", 0, "nesting limit (0 = default)")
	_ = fs.Parse(args)
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}

	failed := false
	for _, path := range fs.Args() {
		doc, err := load(path, asYAML, depth)
		if err != nil {
			failed = true
			if de, ok := jsondoc.AsDeserializationError(err); ok {
				fmt.Fprintf(os.Stderr, "%s: %s\n", path, de.Code())
				continue
			}
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			continue
		}
		fmt.Printf("%s: ok (%d values, %d bytes)\n", path, doc.MemoryUsage(), jsondoc.Measure(doc))
	}
	if failed {
		os.Exit(1)
	}
}

func fmtCmd(args []string) {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	var asYAML bool
	var compact bool
	fs.BoolVar(&asYAML, "yaml", false, "treat inputs as YAML")
	fs.BoolVar(&compact, "compact", false, "emit compact output instead of pretty")
	_ = fs.Parse(args)
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}

	for _, path := range fs.Args() {
		doc, err := load(path, asYAML, 0)
		if err != nil {
			fatalf("%s: %v", path, err)
		}
		var out []byte
		if compact {
			out, err = jsondoc.Serialize(doc)
		} else {
			out, err = jsondoc.SerializePretty(doc)
		}
		if err != nil {
			fatalf("%s: %v", path, err)
		}
		os.Stdout.Write(out)
		fmt.Println()
	}
}

func load(path string, asYAML bool, depth int) (*jsondoc.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc := jsondoc.New()
	opt := jsondoc.DeserializeOpt{MaxDepth: depth}
	if asYAML {
		err = jsondoc.DeserializeYAML(doc, data, opt)
	} else {
		err = jsondoc.Deserialize(doc, data, opt)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
