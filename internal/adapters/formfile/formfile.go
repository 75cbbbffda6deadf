// Package formfile loads a saved form from YAML, for offline runs of the generator.
//
//	adults: 2
//	children: 0
//	order: cityA-first
//	city_a:
//	  - description: |
//	      Makkah Hotel A - 5 Nights
//	      Quad Room, Half Board
//	    price: 400
//	city_b:
//	  - description: Madinah Hotel B
//	    price: 350
package formfile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"hotel_packages/internal/domain"
)

func Load(path string) (domain.Form, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Form{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse rejects unknown keys so a misspelt "prise" does not silently drop a row.
func Parse(r io.Reader) (domain.Form, error) {
	var form domain.Form
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(&form); err != nil && err != io.EOF {
		return domain.Form{}, fmt.Errorf("parse form: %w", err)
	}
	return form, nil
}
