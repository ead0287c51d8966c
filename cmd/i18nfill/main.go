package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/facility-directory/internal/i18n"
)

func main() {
	dir := flag.String("dir", "./locales", "directory with locale JSON files")
	canonicalName := flag.String("canonical", "en", "canonical locale")
	flag.Parse()

	canonical, err := i18n.Load(filepath.Join(*dir, *canonicalName+".json"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18nfill: %v\n", err)
		os.Exit(1)
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18nfill: %v\n", err)
		os.Exit(1)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		locale := strings.TrimSuffix(name, ".json")
		if locale == *canonicalName {
			continue
		}

		path := filepath.Join(*dir, name)
		messages, err := i18n.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "i18nfill: %v\n", err)
			os.Exit(1)
		}

		filled := i18n.Fill(canonical, messages)
		if len(filled) == 0 {
			fmt.Printf("%s: complete\n", locale)
			continue
		}

		if err := i18n.Save(path, messages); err != nil {
			fmt.Fprintf(os.Stderr, "i18nfill: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: filled %d keys\n", locale, len(filled))
		for _, key := range filled {
			fmt.Printf("  + %s\n", key)
		}
	}
}
