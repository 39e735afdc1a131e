package domain

// CatalogItem is a purchasable item in the shop. Owned by the catalog importer.
type CatalogItem struct {
	ItemName    string  `json:"item_name" db:"item_name"`
	Price       int64   `json:"price" db:"price"`
	Description string  `json:"item_description" db:"description"`
	CategoryTag string  `json:"category_tag" db:"category_tag"`
	SpeciesTag  string  `json:"species_tag" db:"species_tag"`
	Icon        *string `json:"item_icon,omitempty" db:"icon"`
}

// CatalogEntry is one value of the catalog definition file, keyed by item name.
type CatalogEntry struct {
	Price       *int64  `json:"price" validate:"required,gte=0"`
	Description string  `json:"item_description"`
	CategoryTag string  `json:"category_tag" validate:"required"`
	SpeciesTag  string  `json:"species_tag"`
	Icon        *string `json:"item_icon,omitempty" validate:"omitempty,max=512"`
}

// ToItem converts a definition entry into a catalog row.
// Callers must validate the entry first; a nil price becomes 0.
func (e CatalogEntry) ToItem(name string) CatalogItem {
	var price int64
	if e.Price != nil {
		price = *e.Price
	}
	return CatalogItem{
		ItemName:    name,
		Price:       price,
		Description: e.Description,
		CategoryTag: e.CategoryTag,
		SpeciesTag:  e.SpeciesTag,
		Icon:        e.Icon,
	}
}

// ImportFailure records why a single catalog entry was skipped
type ImportFailure struct {
	ItemName string `json:"item_name"`
	Reason   string `json:"reason"`
}

// ImportReport summarizes a catalog import batch
type ImportReport struct {
	Imported int             `json:"imported"`
	Failures []ImportFailure `json:"failures,omitempty"`
}
