package appointment

import (
	"encoding/json"
	"testing"
	"time"
)

func TestComposeAndSplitTitle(t *testing.T) {
	if got := ComposeTitle("Rex", "Limpeza"); got != "Rex - Limpeza" {
		t.Fatalf("compose mismatch: %q", got)
	}
	if got := ComposeTitle("Rex", ""); got != "Rex" {
		t.Fatalf("empty procedure should yield bare name, got %q", got)
	}

	name, proc := SplitTitle("Rex - Limpeza")
	if name != "Rex" || proc != "Limpeza" {
		t.Fatalf("split mismatch: %q %q", name, proc)
	}
	name, proc = SplitTitle("Rex")
	if name != "Rex" || proc != "" {
		t.Fatalf("separator-less split mismatch: %q %q", name, proc)
	}
}

func TestParseSpeciesDefaultsToCanino(t *testing.T) {
	if got := ParseSpecies(" Equino "); got != SpeciesEquino {
		t.Fatalf("expected equino, got %q", got)
	}
	if got := ParseSpecies("papagaio"); got != SpeciesCanino {
		t.Fatalf("expected Canino fallback, got %q", got)
	}
}

func TestColorForIsFixedLookup(t *testing.T) {
	eq := ColorFor(SpeciesEquino)
	ca := ColorFor(SpeciesCanino)
	fe := ColorFor(SpeciesFelino)
	ou := ColorFor(SpeciesOutros)
	if eq == ca || ca == fe {
		t.Fatalf("equino/canino/default must differ: %q %q %q", eq, ca, fe)
	}
	if fe != ou {
		t.Fatalf("felino and outros share the default token: %q %q", fe, ou)
	}
}

func TestTimestampJSONRoundTrip(t *testing.T) {
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)
	a := Appointment{
		ID:    "a1",
		Title: "Rex - Limpeza",
		Start: At(day, 9, 0),
		End:   At(day, 10, 0),
	}
	data, err := json.Marshal(&a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Appointment
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Start.Equal(a.Start.Time) || back.Day() != "2024-03-10" || back.Hour() != 9 {
		t.Fatalf("round-trip mismatch: %+v", back)
	}
}

func TestTimestampDayHelpers(t *testing.T) {
	day := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)
	ts := At(day, 9, 30)
	if !ts.SameDay(day) {
		t.Fatalf("expected same day")
	}
	if ts.SameDay(day.AddDate(0, 0, 1)) {
		t.Fatalf("next day must not match")
	}
	if ts.Clock() != "09:30" {
		t.Fatalf("clock mismatch: %q", ts.Clock())
	}
}
