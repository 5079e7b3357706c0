package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/appengine-ltd/micromatch/internal/config"
	"github.com/appengine-ltd/micromatch/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	var (
		catalogPath string
		root        string
	)
	flag.StringVar(&catalogPath, "catalog", "", "catalog YAML to document (built-in when empty)")
	flag.StringVar(&root, "out", filepath.Join("docs", "reference"), "output directory")
	flag.Parse()

	catalog, err := config.Settings{CatalogPath: catalogPath}.Catalog()
	if err != nil {
		fatal(err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateOrganismsDoc(catalog),
		generateSharedTraitsDoc(catalog),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Organism Catalog\n\n")
	b.WriteString("Generated from the organism catalog using `go run ./cmd/catalogdoc`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateOrganismsDoc(catalog game.Catalog) docFile {
	items := catalog.Organisms()
	sort.Slice(items, func(i, j int) bool {
		if items[i].Group != items[j].Group {
			return items[i].Group < items[j].Group
		}
		return items[i].Name < items[j].Name
	})

	var b strings.Builder
	b.WriteString("# Organisms\n\n")
	b.WriteString(fmt.Sprintf("Total organisms: **%d**. Total traits: **%d**.\n\n", catalog.Len(), catalog.TotalTraits()))
	b.WriteString("| Name | Group | Stain | Microscopic | Cultural |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, o := range items {
		b.WriteString("| ")
		b.WriteString(escape(o.Name))
		b.WriteString(" | ")
		b.WriteString(escape(o.Group))
		b.WriteString(" | ")
		b.WriteString(escape(o.Stain))
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(o.Microscopic, "\n")))
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(o.Cultural, "\n")))
		b.WriteString(" |\n")
	}

	return docFile{Name: "organisms.md", Title: "Organisms", Content: b.String()}
}

type sharedTrait struct {
	Category  game.Category
	Text      string
	Organisms []string
}

// sharedTraits lists trait texts carried by more than one organism. A match
// on one of these must satisfy every organism that carries it.
func sharedTraits(catalog game.Catalog) []sharedTrait {
	type key struct {
		category game.Category
		text     string
	}
	owners := map[key][]string{}
	for _, o := range catalog.Organisms() {
		for _, category := range []game.Category{game.CategoryMicroscopic, game.CategoryCultural} {
			for _, t := range o.Traits(category) {
				k := key{category, t}
				owners[k] = append(owners[k], o.Name)
			}
		}
	}

	out := make([]sharedTrait, 0)
	for k, names := range owners {
		if len(names) < 2 {
			continue
		}
		sort.Strings(names)
		out = append(out, sharedTrait{Category: k.category, Text: k.text, Organisms: names})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Text < out[j].Text
	})
	return out
}

func generateSharedTraitsDoc(catalog game.Catalog) docFile {
	items := sharedTraits(catalog)

	var b strings.Builder
	b.WriteString("# Shared Traits\n\n")
	b.WriteString("Traits listed under more than one organism.\n\n")
	if len(items) == 0 {
		b.WriteString("None.\n")
		return docFile{Name: "shared-traits.md", Title: "Shared Traits", Content: b.String()}
	}
	b.WriteString("| Category | Trait | Organisms |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, s := range items {
		b.WriteString("| ")
		b.WriteString(escape(string(s.Category)))
		b.WriteString(" | ")
		b.WriteString(escape(s.Text))
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(s.Organisms, ", ")))
		b.WriteString(" |\n")
	}
	return docFile{Name: "shared-traits.md", Title: "Shared Traits", Content: b.String()}
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
