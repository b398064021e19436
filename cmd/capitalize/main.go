// Command capitalize normalizes a puzzle CSV in place: it backs up the
// original file, capitalizes the first letter of each clue column and
// writes the result next to the input. Run it after editing puzzle data
// by hand.
//
//	go run ./cmd/capitalize -in data/categories.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// clue columns in the puzzle CSV header
var clueColumns = map[string]bool{
	"word1": true,
	"word2": true,
	"word3": true,
	"word4": true,
	"word5": true,
}

func main() {
	in := flag.String("in", "data/categories.csv", "puzzle CSV to process")
	flag.Parse()

	backup := strings.TrimSuffix(*in, ".csv") + "_backup.csv"
	out := strings.TrimSuffix(*in, ".csv") + "_capitalized.csv"

	if err := copyFile(*in, backup); err != nil {
		log.Fatalf("Failed to create backup: %v", err)
	}
	fmt.Printf("Backup created: %s\n", backup)

	if err := processCSV(*in, out); err != nil {
		log.Fatalf("Error processing CSV: %v", err)
	}
	fmt.Printf("Successfully processed %s and saved to %s\n", *in, out)
}

// processCSV rewrites the input with clue columns capitalized.
func processCSV(inPath, outPath string) error {
	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return fmt.Errorf("invalid CSV: %w", err)
	}
	if len(rows) < 1 {
		return fmt.Errorf("missing header row in %s", inPath)
	}

	header := rows[0]
	for _, row := range rows[1:] {
		for i, col := range header {
			if i < len(row) && clueColumns[strings.ToLower(strings.TrimSpace(col))] {
				row[i] = capitalizeFirstLetter(row[i])
			}
		}
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer outFile.Close()

	writer := csv.NewWriter(outFile)
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// capitalizeFirstLetter uppercases the first rune of s. Blank strings
// pass through unchanged.
func capitalizeFirstLetter(s string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
