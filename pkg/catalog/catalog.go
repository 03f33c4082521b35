// pkg/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"exhibitor-profile/internal/common/errors"
	"exhibitor-profile/internal/common/validation"
	"exhibitor-profile/internal/models"
)

var schema = validation.MustCompile(fileSchema)

// LoadCatalog reads a catalog file. An empty path yields the built-in catalog.
func LoadCatalog(path string) (models.Catalog, error) {
	if path == "" {
		return models.DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogInvalidError(fmt.Sprintf("read %s: %v", path, err))
	}
	return Parse(data)
}

// Parse validates a catalog document and converts it to the model form.
func Parse(data []byte) (models.Catalog, error) {
	if result := schema.ValidateJSON(data); !result.Valid {
		return nil, errors.NewCatalogInvalidError(result.Error())
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.NewCatalogInvalidError(err.Error())
	}
	return file.toCatalog()
}

func (f File) toCatalog() (models.Catalog, error) {
	var problems []string
	seen := make(map[models.SectionID]bool, len(f.Sections))
	out := make(models.Catalog, 0, len(f.Sections))

	for i, s := range f.Sections {
		def := models.SectionDefinition{
			ID:        models.SectionID(s.ID),
			Name:      s.Name,
			Group:     models.SectionGroup(s.Group),
			Kind:      models.SectionKind(s.Kind),
			Mandatory: s.Mandatory,
			GoldOnly:  s.GoldOnly,
			Fields:    s.Fields,
		}

		switch {
		case !def.ID.IsKnown():
			problems = append(problems, fmt.Sprintf("sections[%d]: unknown section %q", i, s.ID))
		case seen[def.ID]:
			problems = append(problems, fmt.Sprintf("sections[%d]: duplicate section %q", i, s.ID))
		}
		seen[def.ID] = true

		if def.Kind == models.KindMultiField && len(def.Fields) == 0 {
			problems = append(problems, fmt.Sprintf("sections[%d]: multi_field section %q needs fields", i, s.ID))
		}
		if def.Kind != models.KindMultiField && len(def.Fields) > 0 {
			problems = append(problems, fmt.Sprintf("sections[%d]: only multi_field sections take fields", i))
		}
		if def.Kind == models.KindProducts && def.Mandatory {
			problems = append(problems, fmt.Sprintf("sections[%d]: products section cannot be mandatory", i))
		}
		if def.GoldOnly && def.Mandatory {
			problems = append(problems, fmt.Sprintf("sections[%d]: gold-only section %q cannot be mandatory", i, s.ID))
		}
		out = append(out, def)
	}

	if len(problems) > 0 {
		return nil, errors.NewCatalogInvalidError(strings.Join(problems, "; "))
	}
	return out, nil
}

// Export renders a catalog in file form, e.g. to seed a new catalog file.
func Export(c models.Catalog, version string) File {
	f := File{Version: version, Sections: make([]SectionSpec, 0, len(c))}
	for _, d := range c {
		f.Sections = append(f.Sections, SectionSpec{
			ID:        string(d.ID),
			Name:      d.Name,
			Group:     string(d.Group),
			Kind:      string(d.Kind),
			Mandatory: d.Mandatory,
			GoldOnly:  d.GoldOnly,
			Fields:    d.Fields,
		})
	}
	return f
}
