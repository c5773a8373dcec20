package menu

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pankecas/backend/internal/domain/catalog"
)

// menuFile is the on-disk JSON shape of the menu definition
type menuFile struct {
	Categories []catalog.Category `json:"categories"`
	Items      []catalog.Product  `json:"items"`
}

// Load reads the JSON menu definition and builds the validated catalog
func Load(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	return Parse(data)
}

// Parse builds the catalog from raw JSON menu data
func Parse(data []byte) (*catalog.Catalog, error) {
	var file menuFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse menu file: %w", err)
	}

	c, err := catalog.NewCatalog(file.Items, file.Categories)
	if err != nil {
		return nil, fmt.Errorf("invalid menu: %w", err)
	}
	return c, nil
}
