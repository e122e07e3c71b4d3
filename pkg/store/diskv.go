package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/vetagenda/pkg/appointment"
)

// Load creates a Store backed by diskv using the provided config. A nil
// config falls back to LoadConfig.
func Load(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*appointment.Appointment, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	a := appointment.Appointment{}
	if err := json.Unmarshal(val, &a); err != nil {
		return nil, err
	}
	if a.ID == "" {
		pk := keyToPathTransform(key)
		a.ID = pk.FileName
	}
	return &a, nil
}

func (p *persistence) Appointments(ctx context.Context) []*appointment.Appointment {
	all := make([]*appointment.Appointment, 0)
	for key := range p.d.Keys(ctx.Done()) {
		a, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, a)
	}
	sortAppointments(all)
	return all
}

func (p *persistence) Create(ctx context.Context, a *appointment.Appointment) (*appointment.Appointment, error) {
	if a == nil {
		return nil, errors.New("store: nil appointment")
	}
	clone := *a
	clone.ID = uuid.NewString()
	if err := p.write(&clone); err != nil {
		return nil, err
	}
	return &clone, nil
}

func (p *persistence) Update(ctx context.Context, id string, patch Patch) (*appointment.Appointment, error) {
	for key := range p.d.Keys(ctx.Done()) {
		a, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		if a.ID != id {
			continue
		}
		patch.apply(a)
		if err := p.write(a); err != nil {
			return nil, err
		}
		// Start may have moved to another day, so the record is rekeyed.
		// The old key is erased only after the new one is on disk.
		if newKey := toKey(a); newKey != key {
			if err := p.d.Erase(key); err != nil {
				return nil, err
			}
		}
		return a, nil
	}
	return nil, nil
}

func (p *persistence) write(a *appointment.Appointment) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(a), data)
}

const (
	layoutISO        = "2006-01-02"
	patientIndexFile = ".patients.json"
)

func (p *persistence) patientIndexPath() string {
	return filepath.Join(p.basePath, patientIndexFile)
}

// Patients returns the roster from the index file, seeding the default
// clinic roster on first use.
func (p *persistence) Patients(ctx context.Context) []*appointment.Patient {
	if p.basePath == "" {
		return seedPatients()
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "store: ensure base path: %v\n", err)
		return seedPatients()
	}
	path := p.patientIndexPath()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		roster := seedPatients()
		if err := p.savePatients(roster); err != nil {
			fmt.Fprintf(os.Stderr, "store: seed patients: %v\n", err)
		}
		return roster
	}
	if err != nil || len(data) == 0 {
		return seedPatients()
	}
	var roster []*appointment.Patient
	if err := json.Unmarshal(data, &roster); err != nil {
		fmt.Fprintf(os.Stderr, "store: patient index: %v\n", err)
		return seedPatients()
	}
	return roster
}

func (p *persistence) savePatients(roster []*appointment.Patient) error {
	data, err := json.MarshalIndent(roster, "", "  ")
	if err != nil {
		return err
	}
	path := p.patientIndexPath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func sortAppointments(appts []*appointment.Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		left := appts[i]
		right := appts[j]
		if left == nil || right == nil {
			return left != nil
		}
		lt := left.Start.Time
		rt := right.Start.Time
		switch {
		case lt.IsZero() && rt.IsZero():
			return left.ID < right.ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return left.ID < right.ID
			}
			return lt.Before(rt)
		}
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `yyyy-mm-dd-id` so each day becomes a directory shard.
func toKey(a *appointment.Appointment) string {
	then := a.Start.Local().Format(layoutISO)
	id := a.ID
	if id == "" {
		id = uuid.NewString()
		a.ID = id
	}
	return fmt.Sprintf("%s-%s", then, strings.ReplaceAll(id, "-", ""))
}
