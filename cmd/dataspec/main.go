package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	dataspec "github.com/reoring/dataspec"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	case "search":
		searchCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `dataspec CLI

Usage:
  dataspec validate -data FILE -schema FILE [-data-format yaml|json] [-schema-format yaml|json]
  dataspec search -data FILE -path EXPR [-data-format yaml|json]

Files may be YAML (.yaml/.yml) or JSON (.json); the format flags override
extension detection.`)
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var dataFile, schemaFile, dataFormat, schemaFormat string
	fs.StringVar(&dataFile, "data", "", "path to data file")
	fs.StringVar(&schemaFile, "schema", "", "path to schema file")
	fs.StringVar(&dataFormat, "data-format", "", "force data format (yaml or json)")
	fs.StringVar(&schemaFormat, "schema-format", "", "force schema format (yaml or json)")
	_ = fs.Parse(args)
	if dataFile == "" || schemaFile == "" {
		fs.Usage()
		os.Exit(2)
	}

	data, err := dataspec.LoadFile(dataFile, dataspec.Format(dataFormat))
	if err != nil {
		fatalf(2, "loading %s: %v", dataFile, err)
	}
	schema, err := dataspec.LoadFile(schemaFile, dataspec.Format(schemaFormat))
	if err != nil {
		fatalf(2, "loading %s: %v", schemaFile, err)
	}

	diag, err := dataspec.Report(data, schema)
	if err != nil {
		fatalf(3, "unexpected error during validation: %v", err)
	}
	if diag != "" {
		fmt.Fprintln(os.Stderr, "validation failed:")
		fmt.Fprintln(os.Stderr, diag)
		os.Exit(1)
	}
	fmt.Println("validation successful: data matches the schema")
}

func searchCmd(args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	var dataFile, path, dataFormat string
	fs.StringVar(&dataFile, "data", "", "path to data file")
	fs.StringVar(&path, "path", "", "DataPath expression")
	fs.StringVar(&dataFormat, "data-format", "", "force data format (yaml or json)")
	_ = fs.Parse(args)
	if dataFile == "" || path == "" {
		fs.Usage()
		os.Exit(2)
	}

	data, err := dataspec.LoadFile(dataFile, dataspec.Format(dataFormat))
	if err != nil {
		fatalf(2, "loading %s: %v", dataFile, err)
	}
	value, err := dataspec.Search(data, path)
	if err != nil {
		fatalf(1, "%v", err)
	}
	switch value.(type) {
	case map[string]any, []any:
		out, err := yaml.Marshal(value)
		if err != nil {
			fatalf(3, "rendering result: %v", err)
		}
		fmt.Print(string(out))
	default:
		fmt.Println(value)
	}
}

func fatalf(code int, format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(code)
}
