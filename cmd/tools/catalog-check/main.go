// cmd/tools/catalog-check/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"exhibitor-profile/internal/models"
	"exhibitor-profile/pkg/catalog"
)

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)

	validatePath := validateCmd.String("path", "configs/catalog.json", "Path to catalog file")
	exportPath := exportCmd.String("path", "configs/catalog.json", "Where to write the built-in catalog")
	exportVersion := exportCmd.String("version", "1", "Catalog version to record")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate":
		validateCmd.Parse(os.Args[2:])
		sections, err := catalog.LoadCatalog(*validatePath)
		if err != nil {
			fmt.Printf("Catalog validation failed: %v\n", err)
			os.Exit(1)
		}
		printSummary(os.Stdout, sections)
		fmt.Println("Catalog validation passed.")

	case "export":
		exportCmd.Parse(os.Args[2:])
		if err := writeCatalog(catalog.Export(models.DefaultCatalog(), *exportVersion), *exportPath); err != nil {
			fmt.Printf("Error exporting catalog: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote built-in catalog to %s\n", *exportPath)

	case "help":
		fallthrough
	default:
		help()
	}
}

// summary counts group A sections per package, with and without products.
type summary struct {
	Sections  int
	GroupA    map[models.PackageType]int
	GroupB    int
	Mandatory []models.SectionID
}

func summarize(sections models.Catalog) summary {
	s := summary{
		Sections: len(sections),
		GroupA:   make(map[models.PackageType]int),
	}
	packages := []models.PackageType{models.PackageBronze, models.PackageSilver, models.PackageGold}
	for _, d := range sections {
		if d.Mandatory {
			s.Mandatory = append(s.Mandatory, d.ID)
		}
		if d.Group == models.GroupB {
			s.GroupB++
			continue
		}
		for _, pkg := range packages {
			if d.GoldOnly && pkg != models.PackageGold {
				continue
			}
			s.GroupA[pkg]++
		}
	}
	return s
}

func printSummary(w io.Writer, sections models.Catalog) {
	s := summarize(sections)
	fmt.Fprintf(w, "Sections: %d\n", s.Sections)
	fmt.Fprintf(w, "Group A:  bronze=%d silver=%d gold=%d\n",
		s.GroupA[models.PackageBronze], s.GroupA[models.PackageSilver], s.GroupA[models.PackageGold])
	fmt.Fprintf(w, "Group B:  %d\n", s.GroupB)
	fmt.Fprintf(w, "Mandatory: %v\n", s.Mandatory)
}

func writeCatalog(file catalog.File, path string) error {
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}

func help() {
	fmt.Print(`
Usage: catalog-check <command> [flags]

Commands:
  validate  Validate a section catalog file and print its shape
  export    Write the built-in catalog as JSON
  help      Show this help message

Examples:
  catalog-check validate -path configs/catalog.json
  catalog-check export -path configs/catalog.json -version 2

Use 'catalog-check <command> -h' for more information about a command.
`)
}
