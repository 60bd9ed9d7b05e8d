package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/finqa-labs/fintext-normalizer/pkg/fintext"
)

func main() {
	jsonlPath := flag.String("jsonl", "", "normalize records from a JSONL file ('-' for stdin)")
	fieldList := flag.String("fields", "question,answer", "comma-separated record fields to normalize")
	clean := flag.Bool("clean", false, "run the full cleaning pipeline before currency normalization")
	flag.Usage = printUsage
	flag.Parse()

	if *jsonlPath != "" {
		if err := runJSONL(*jsonlPath, splitFields(*fieldList), *clean); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	normalize := newTransform(*clean)

	// If text provided as arguments, normalize and exit
	if flag.NArg() > 0 {
		fmt.Println(normalize(strings.Join(flag.Args(), " ")))
		return
	}

	// Interactive mode
	fmt.Println("Financial text normalizer (interactive mode)")
	fmt.Println("Type a sentence, press Enter to normalize. Ctrl+C to exit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if text == "" {
			continue
		}
		fmt.Printf("  %s\n\n", normalize(text))
	}
}

// newTransform picks the currency-only normalizer or the full cleaning
// pipeline.
func newTransform(clean bool) func(string) string {
	if clean {
		return fintext.NewPipeline().Run
	}
	return fintext.NewNormalizer().NormalizeText
}

// runJSONL normalizes the named fields of every record in a JSONL stream
// and writes the rewritten records to stdout, one JSON object per line.
func runJSONL(path string, fields []string, clean bool) error {
	var in *os.File
	if path == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var records []fintext.Record
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var rec fintext.Record
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	var out []fintext.Record
	if clean {
		out = fintext.NewPipeline().RunFields(records, fields...)
	} else {
		out = fintext.NewNormalizer().NormalizeFields(records, fields...)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	enc := json.NewEncoder(w)
	for _, rec := range out {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

func splitFields(s string) []string {
	var fields []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func printUsage() {
	fmt.Println("Usage: normalize [flags] [text...]")
	fmt.Println("       normalize                    (interactive mode)")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
