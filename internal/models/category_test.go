package models

import "testing"

func TestValidCategory(t *testing.T) {
	for _, slug := range []string{"poemas", "cuentos", "escritos"} {
		if !ValidCategory(slug) {
			t.Errorf("ValidCategory(%q) = false, want true", slug)
		}
	}

	for _, slug := range []string{"", "novelas", "POEMAS", "poemas/"} {
		if ValidCategory(slug) {
			t.Errorf("ValidCategory(%q) = true, want false", slug)
		}
	}
}

func TestCategoryBySlug(t *testing.T) {
	c, ok := CategoryBySlug("cuentos")
	if !ok {
		t.Fatal("CategoryBySlug(cuentos) not found")
	}
	if c.Name != "Cuentos" {
		t.Errorf("Name = %q, want Cuentos", c.Name)
	}

	if _, ok := CategoryBySlug("otro"); ok {
		t.Error("CategoryBySlug(otro) should not be found")
	}
}
