package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/vetagenda/pkg/filter"
)

// FilterOptions narrows the printed agenda by category.
type FilterOptions struct {
	Veterinarian string
	Species      string
	Status       string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVar(&o.Veterinarian, "vet", "",
		"Only appointments for one practitioner: silva or santos.")
	cmd.Flags().StringVar(&o.Species, "especie", "",
		"Only one species: equino, canino, felino or outros.")
	cmd.Flags().StringVar(&o.Status, "status", "",
		"Only one status: pendente, confirmado, cancelado or realizado.")
}

// GetFilters builds the filter state: a set flag excludes every other key
// in its category, an empty flag leaves the category wide open.
func (o *FilterOptions) GetFilters() *filter.State {
	s := filter.New()
	narrow := func(cat filter.Category, keep string) {
		if keep == "" {
			return
		}
		for _, key := range s.Keys(cat) {
			if key != keep {
				s.Toggle(cat, key)
			}
		}
	}
	narrow(filter.CategoryVeterinarian, o.Veterinarian)
	narrow(filter.CategorySpecies, o.Species)
	narrow(filter.CategoryStatus, o.Status)
	return s
}
