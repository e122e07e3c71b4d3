// Package filter holds the sidebar's per-category visibility toggles.
package filter

import (
	"strings"

	"tableflip.dev/vetagenda/pkg/appointment"
)

// Category names one of the three independent toggle groups.
type Category string

const (
	CategorySpecies      Category = "species"
	CategoryVeterinarian Category = "veterinarian"
	CategoryStatus       Category = "status"
)

// Categories lists the groups in sidebar order.
func Categories() []Category {
	return []Category{CategorySpecies, CategoryVeterinarian, CategoryStatus}
}

// Veterinarians is the clinic's fixed practitioner filter set.
var Veterinarians = []string{"silva", "santos", "todos"}

// State maps each (category, key) pair to an inclusion flag. Keys are fixed
// at construction; toggling an unknown pair is a no-op and reading it yields
// false, so a fully-cleared category means "exclude all".
type State struct {
	flags map[Category]map[string]bool
	order map[Category][]string
}

// New builds the fixed category maps with every key included.
func New() *State {
	s := &State{
		flags: make(map[Category]map[string]bool),
		order: make(map[Category][]string),
	}
	for _, sp := range appointment.AllSpecies() {
		s.add(CategorySpecies, string(sp))
	}
	for _, v := range Veterinarians {
		s.add(CategoryVeterinarian, v)
	}
	for _, st := range appointment.Statuses() {
		s.add(CategoryStatus, string(st))
	}
	return s
}

func (s *State) add(cat Category, key string) {
	if s.flags[cat] == nil {
		s.flags[cat] = make(map[string]bool)
	}
	s.flags[cat][key] = true
	s.order[cat] = append(s.order[cat], key)
}

// Keys returns the fixed keys of a category in display order.
func (s *State) Keys(cat Category) []string {
	return s.order[cat]
}

// Toggle flips the flag for a known (category, key) pair.
func (s *State) Toggle(cat Category, key string) {
	key = normalize(key)
	group, ok := s.flags[cat]
	if !ok {
		return
	}
	if _, ok := group[key]; !ok {
		return
	}
	group[key] = !group[key]
}

// Included reports the current flag; unknown pairs read as excluded.
func (s *State) Included(cat Category, key string) bool {
	group, ok := s.flags[cat]
	if !ok {
		return false
	}
	return group[normalize(key)]
}

// Predicate returns the inclusion test over appointments. The grid does not
// consult it yet; wiring the layout queries through it is a follow-on.
func (s *State) Predicate() func(*appointment.Appointment) bool {
	return func(a *appointment.Appointment) bool {
		if a == nil {
			return false
		}
		if !s.Included(CategorySpecies, string(a.Species)) {
			return false
		}
		if !s.Included(CategoryStatus, string(a.Status)) {
			return false
		}
		vet := normalize(a.Veterinarian)
		if s.Included(CategoryVeterinarian, vet) {
			return true
		}
		return s.Included(CategoryVeterinarian, "todos")
	}
}

// normalize lowercases a key and drops the honorific so "Dr. Silva" matches
// the filter key "silva".
func normalize(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	k = strings.TrimPrefix(k, "dr. ")
	k = strings.TrimPrefix(k, "dra. ")
	return k
}
