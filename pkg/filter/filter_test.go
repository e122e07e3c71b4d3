package filter

import (
	"testing"

	"tableflip.dev/vetagenda/pkg/appointment"
)

func TestDefaultsAllIncluded(t *testing.T) {
	s := New()
	for _, cat := range Categories() {
		for _, key := range s.Keys(cat) {
			if !s.Included(cat, key) {
				t.Fatalf("expected %s/%s included by default", cat, key)
			}
		}
	}
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	s := New()
	s.Toggle(CategorySpecies, "canino")
	if s.Included(CategorySpecies, "canino") {
		t.Fatalf("expected canino excluded after toggle")
	}
	s.Toggle(CategorySpecies, "canino")
	if !s.Included(CategorySpecies, "canino") {
		t.Fatalf("expected canino included after second toggle")
	}
}

func TestToggleLeavesOtherCategoriesAlone(t *testing.T) {
	s := New()
	s.Toggle(CategorySpecies, "canino")
	for _, key := range s.Keys(CategoryStatus) {
		if !s.Included(CategoryStatus, key) {
			t.Fatalf("status/%s changed by a species toggle", key)
		}
	}
	for _, key := range s.Keys(CategoryVeterinarian) {
		if !s.Included(CategoryVeterinarian, key) {
			t.Fatalf("veterinarian/%s changed by a species toggle", key)
		}
	}
}

func TestUnknownKeysAreNoOps(t *testing.T) {
	s := New()
	s.Toggle(CategorySpecies, "dragão")
	if s.Included(CategorySpecies, "dragão") {
		t.Fatalf("unknown key should read as excluded")
	}
	s.Toggle(Category("cor"), "azul")
	if s.Included(Category("cor"), "azul") {
		t.Fatalf("unknown category should read as excluded")
	}
}

func TestPredicate(t *testing.T) {
	s := New()
	a := &appointment.Appointment{
		Species:      appointment.SpeciesCanino,
		Status:       appointment.StatusPendente,
		Veterinarian: "silva",
	}
	if !s.Predicate()(a) {
		t.Fatalf("expected inclusion with defaults")
	}
	s.Toggle(CategoryStatus, "pendente")
	if s.Predicate()(a) {
		t.Fatalf("expected exclusion once pendente is off")
	}
}

func TestPredicateMatchesPractitionerWithHonorific(t *testing.T) {
	s := New()
	s.Toggle(CategoryVeterinarian, "todos")
	s.Toggle(CategoryVeterinarian, "santos")

	keep := s.Predicate()
	silva := &appointment.Appointment{
		Species:      appointment.SpeciesCanino,
		Status:       appointment.StatusPendente,
		Veterinarian: "Dr. Silva",
	}
	santos := &appointment.Appointment{
		Species:      appointment.SpeciesCanino,
		Status:       appointment.StatusPendente,
		Veterinarian: "Dra. Santos",
	}
	if !keep(silva) {
		t.Fatalf("expected Dr. Silva to match the silva key")
	}
	if keep(santos) {
		t.Fatalf("expected Dra. Santos excluded with santos and todos off")
	}
}
