package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/finqa-labs/fintext-normalizer/pkg/fintext"
	"github.com/finqa-labs/fintext-normalizer/pkg/preprocess"
)

const (
	iterations = 100000
	warmup     = 1000
	boxWidth   = 62

	// ANSI color codes
	colorReset  = "\033[0m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

var line = strings.Repeat("─", boxWidth)

func main() {
	stopwordPath := "wordlists/english_stopwords.txt"
	if len(os.Args) > 1 {
		stopwordPath = os.Args[1]
	}

	fmt.Print("Loading stopword list... ")
	start := time.Now()
	pre, err := preprocess.NewPreprocessor(stopwordPath, preprocess.DefaultOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer pre.Close()
	fmt.Printf("done (%d words in %v)\n", pre.StopwordCount(), time.Since(start).Round(time.Millisecond))
	fmt.Printf("Iterations: %d (warmup: %d)\n", iterations, warmup)
	fmt.Println("Reference: 1 second = 1,000,000,000 ns")
	fmt.Println()

	// Test data
	singleAmount := "$50K"
	rangeAmount := "I'd budget 40-50K for the renovation"
	approxAmount := "my emergency fund is 30k ish"
	sentence := "We saved $2.5M and spent about 40k on fees, maybe 30-40K more"

	norm := fintext.NewNormalizer()
	normNoCache := fintext.NewNormalizerNoCache()
	pipeline := fintext.NewPipeline()

	// Full pipeline benchmarks
	printHeader("NORMALIZER THROUGHPUT")
	bench("Single amount", func() { normNoCache.NormalizeText(singleAmount) })
	bench("Range", func() { normNoCache.NormalizeText(rangeAmount) })
	bench("Approximate", func() { normNoCache.NormalizeText(approxAmount) })
	bench("Sentence (3 amounts)", func() { normNoCache.NormalizeText(sentence) })
	norm.ClearCache()
	norm.NormalizeText(sentence)
	bench("Sentence (cache hit)", func() { norm.NormalizeText(sentence) })
	printFooter()
	fmt.Println()

	// Cleaning steps
	printHeader("CLEANER STEPS BREAKDOWN")
	dirty := "Check <b>this</b>   out: https://example.com | about $50K ish"
	cleaner := fintext.NewCleaner()
	bench("Full cleaning pipeline", func() { cleaner.Clean(dirty) })
	bench("NFKC fold", func() { fintext.NFKCFold(dirty) })
	bench("Strip HTML", func() { fintext.StripHTML(dirty) })
	bench("Strip URLs", func() { fintext.StripURLs(dirty) })
	bench("Strip noise chars", func() { fintext.StripNoiseChars(dirty) })
	bench("Collapse whitespace", func() { fintext.CollapseWhitespace(dirty) })
	bench("Clean + normalize", func() { pipeline.Run(dirty) })
	printFooter()
	fmt.Println()

	// Preprocessing
	printHeader("PREPROCESSING BREAKDOWN")
	normalized := "We saved 2500000 USD and spent 40000 USD approx. on fees"
	bench("Tokenize + filter + stem", func() { pre.Process(normalized) })
	bench("Split words", func() { preprocess.SplitWords(normalized) })
	bench("Stopword lookup", func() { pre.StopwordCount() })
	bench("Stem English", func() { preprocess.StemEnglish("savings") })
	printFooter()
}

func bench(name string, fn func()) {
	for i := 0; i < warmup; i++ {
		fn()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		fn()
	}
	elapsed := time.Since(start)

	opsPerSec := float64(iterations) / elapsed.Seconds()
	nsPerOp := float64(elapsed.Nanoseconds()) / float64(iterations)

	// Truncate name if too long
	displayName := name
	if len(displayName) > 26 {
		displayName = displayName[:26]
	}

	// Format with colors - build plain string for padding, colored for display
	plain := fmt.Sprintf("  %-26s %10.0f ops/sec %8.0f ns", displayName, opsPerSec, nsPerOp)
	padded := padLine(plain)

	// Now colorize the padded string
	colored := fmt.Sprintf("  %-26s %s%10.0f%s ops/sec %s%8.0f%s ns",
		displayName,
		colorGreen, opsPerSec, colorReset,
		colorYellow, nsPerOp, colorReset)

	// Calculate how much padding we added
	extraPad := len(padded) - len(plain)
	if extraPad > 0 {
		colored += strings.Repeat(" ", extraPad)
	}

	fmt.Println(colorDim + "│" + colorReset + colored + colorDim + "│" + colorReset)
}

func padLine(content string) string {
	if len(content) >= boxWidth {
		return content[:boxWidth]
	}
	return content + strings.Repeat(" ", boxWidth-len(content))
}

func printHeader(title string) {
	fmt.Println(colorDim + "┌" + line + "┐" + colorReset)
	printTitleRow("  " + title)
	fmt.Println(colorDim + "├" + line + "┤" + colorReset)
}

func printFooter() {
	fmt.Println(colorDim + "└" + line + "┘" + colorReset)
}

func printTitleRow(content string) {
	fmt.Println(colorDim + "│" + colorReset + colorCyan + padLine(content) + colorReset + colorDim + "│" + colorReset)
}
