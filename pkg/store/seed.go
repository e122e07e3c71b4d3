package store

import "tableflip.dev/vetagenda/pkg/appointment"

// seedPatients is the default roster written on first run. Real deployments
// replace .patients.json with the clinic's own export.
func seedPatients() []*appointment.Patient {
	return []*appointment.Patient{
		{ID: "p-001", Name: "Rex", Species: appointment.SpeciesCanino, Tutor: "Marina Lopes"},
		{ID: "p-002", Name: "Trovão", Species: appointment.SpeciesEquino, Tutor: "Haras Boa Vista"},
		{ID: "p-003", Name: "Mimi", Species: appointment.SpeciesFelino, Tutor: "Carlos Andrade"},
		{ID: "p-004", Name: "Luna", Species: appointment.SpeciesCanino, Tutor: "Paula Ferreira"},
		{ID: "p-005", Name: "Zeca", Species: appointment.SpeciesOutros, Tutor: "Sítio do João"},
	}
}
