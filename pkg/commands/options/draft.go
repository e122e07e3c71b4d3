package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/vetagenda/pkg/appointment"
	"tableflip.dev/vetagenda/pkg/draft"
)

// DraftOptions captures the appointment form fields as flags.
type DraftOptions struct {
	Patient      string
	Species      string
	Veterinarian string
	Procedure    string
	Date         string
	Start        string
	End          string
	Notes        string
}

func AddDraftArgs(cmd *cobra.Command, o *DraftOptions) {
	cmd.Flags().StringVarP(&o.Patient, "paciente", "p", "",
		"Patient name.")
	cmd.Flags().StringVar(&o.Species, "especie", "",
		"Species: equino, canino, felino or outros.")
	cmd.Flags().StringVar(&o.Veterinarian, "vet", draft.Veterinarians[0],
		"Practitioner name.")
	cmd.Flags().StringVar(&o.Procedure, "procedimento", "",
		"Procedure, composed into the appointment title.")
	cmd.Flags().StringVar(&o.Date, "data", "",
		`Appointment day, example: --data="2024-03-10". Defaults to today.`)
	cmd.Flags().StringVar(&o.Start, "inicio", "",
		"Start time, example: 09:00.")
	cmd.Flags().StringVar(&o.End, "fim", "",
		"End time, example: 10:00.")
	cmd.Flags().StringVar(&o.Notes, "obs", "",
		"Free-form notes.")
}

// GetDraft merges the flags over the default draft.
func (o *DraftOptions) GetDraft() draft.Draft {
	d := draft.New(time.Now())
	d.PatientName = o.Patient
	if o.Species != "" {
		d.Species = appointment.ParseSpecies(o.Species)
	}
	if o.Veterinarian != "" {
		d.Veterinarian = o.Veterinarian
	}
	d.Procedure = o.Procedure
	if o.Date != "" {
		d.Date = o.Date
	}
	if o.Start != "" {
		d.Start = o.Start
	}
	if o.End != "" {
		d.End = o.End
	}
	d.Notes = o.Notes
	return d
}
