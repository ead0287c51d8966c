package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/facility-directory/internal/i18n"
)

// Exit codes: 0 all locales complete, 1 tool failure, 2 missing keys found.
func main() {
	dir := flag.String("dir", "./locales", "directory with locale JSON files")
	canonicalName := flag.String("canonical", "en", "canonical locale")
	flag.Parse()

	canonical, err := i18n.Load(filepath.Join(*dir, *canonicalName+".json"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18ncheck: %v\n", err)
		os.Exit(1)
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18ncheck: %v\n", err)
		os.Exit(1)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		locale := strings.TrimSuffix(name, ".json")
		if locale == *canonicalName {
			continue
		}
		names = append(names, locale)
	}
	sort.Strings(names)

	anyMissing := false
	for _, locale := range names {
		messages, err := i18n.Load(filepath.Join(*dir, locale+".json"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "i18ncheck: %v\n", err)
			os.Exit(1)
		}

		missing, extra := i18n.Diff(canonical, messages)
		if len(missing) == 0 && len(extra) == 0 {
			fmt.Printf("%s: complete\n", locale)
			continue
		}
		for _, key := range missing {
			fmt.Printf("%s: missing %s\n", locale, key)
		}
		for _, key := range extra {
			fmt.Printf("%s: extra %s\n", locale, key)
		}
		if len(missing) > 0 {
			anyMissing = true
		}
	}

	if anyMissing {
		os.Exit(2)
	}
}
