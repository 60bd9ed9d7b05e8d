package main

import (
	"fmt"
	"os"

	"github.com/finqa-labs/fintext-normalizer/pkg/preprocess"
)

func main() {
	if len(os.Args) < 3 {
		printUsage()
		os.Exit(1)
	}

	listPath := os.Args[1]
	command := os.Args[2]

	set, err := preprocess.NewStopwordSet(listPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stopword list: %v\n", err)
		os.Exit(1)
	}
	defer set.Close()

	switch command {
	case "add":
		if len(os.Args) < 4 {
			fmt.Println("Error: add requires at least one word")
			os.Exit(1)
		}
		for _, word := range os.Args[3:] {
			if err := set.Add(word); err != nil {
				fmt.Fprintf(os.Stderr, "Error adding word '%s': %v\n", word, err)
				os.Exit(1)
			}
			fmt.Printf("Added: %s\n", word)
		}
		fmt.Printf("Total words: %d\n", set.Len())

	case "remove":
		if len(os.Args) < 4 {
			fmt.Println("Error: remove requires at least one word")
			os.Exit(1)
		}
		for _, word := range os.Args[3:] {
			if err := set.Remove(word); err != nil {
				fmt.Fprintf(os.Stderr, "Error removing word '%s': %v\n", word, err)
				os.Exit(1)
			}
			fmt.Printf("Removed: %s\n", word)
		}
		fmt.Printf("Total words: %d\n", set.Len())

	case "contains":
		if len(os.Args) < 4 {
			fmt.Println("Error: contains requires a word")
			os.Exit(1)
		}
		word := os.Args[3]
		if set.Contains(word) {
			fmt.Printf("'%s' is a stopword\n", word)
		} else {
			fmt.Printf("'%s' is NOT a stopword\n", word)
			os.Exit(1)
		}

	case "rebuild":
		if err := set.Rebuild(); err != nil {
			fmt.Fprintf(os.Stderr, "Error rebuilding FST: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("FST rebuilt. Total words: %d\n", set.Len())

	case "stats":
		fmt.Printf("Stopword list: %s\n", listPath)
		fmt.Printf("Word count: %d\n", set.Len())

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: stopwords <list.txt> <command> [args...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  add <word> [word...]    Add words to the stopword list")
	fmt.Println("  remove <word> [word...] Remove words from the stopword list")
	fmt.Println("  contains <word>         Check if a word is a stopword")
	fmt.Println("  rebuild                 Rebuild FST from the text file")
	fmt.Println("  stats                   Show stopword list statistics")
}
