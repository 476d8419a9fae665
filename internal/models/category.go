package models

// Category is one of the fixed sections of the portal. It is a static
// catalog, not a table: writings reference it by slug.
type Category struct {
	Slug        string
	Name        string
	Icon        string
	Description string
}

// Categories lists the portal sections in display order.
var Categories = []Category{
	{
		Slug:        "poemas",
		Name:        "Poemas",
		Icon:        "📝",
		Description: "Rimas, versos y sentimientos en palabras.",
	},
	{
		Slug:        "cuentos",
		Name:        "Cuentos",
		Icon:        "📖",
		Description: "Historias, aventuras y personajes increíbles.",
	},
	{
		Slug:        "escritos",
		Name:        "Escritos",
		Icon:        "💡",
		Description: "Ideas, notas, pensamientos y todo lo demás.",
	},
}

// CategoryBySlug returns the category for slug, or false when unknown.
func CategoryBySlug(slug string) (Category, bool) {
	for _, c := range Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}

// ValidCategory reports whether slug names a known category.
func ValidCategory(slug string) bool {
	_, ok := CategoryBySlug(slug)
	return ok
}
