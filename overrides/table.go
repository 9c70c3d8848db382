package overrides

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hospice/hospital-locator-api/facilities"
	"github.com/hospice/hospital-locator-api/geo"
	"gopkg.in/yaml.v3"
)

var ErrInvalidTable = errors.New("invalid override table")

// Record is a curated facility injected into results for a region.
type Record struct {
	Name               string   `yaml:"name"`
	Latitude           float64  `yaml:"latitude"`
	Longitude          float64  `yaml:"longitude"`
	Address            string   `yaml:"address"`
	DestinationAddress string   `yaml:"destination_address"`
	Phone              string   `yaml:"phone"`
	Website            string   `yaml:"website"`
	Beds               int      `yaml:"beds"`
	HasEmergency       bool     `yaml:"has_emergency"`
	Category           string   `yaml:"category"`
	Specialties        []string `yaml:"specialties"`
	Ownership          string   `yaml:"ownership"`
}

type Region struct {
	Name    string     `yaml:"name"`
	Bounds  geo.Bounds `yaml:"bounds"`
	Records []Record   `yaml:"records"`
}

type Table struct {
	Regions []Region `yaml:"regions"`
}

func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read override table: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML override table. Records without
// specialties get General Medicine; blank phone and address get the
// usual placeholders.
func Parse(data []byte) (*Table, error) {
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}

	for i := range table.Regions {
		region := &table.Regions[i]
		if !region.Bounds.Valid() {
			return nil, fmt.Errorf("%w: region %q has invalid bounds", ErrInvalidTable, region.Name)
		}
		for j := range region.Records {
			if err := normalize(&region.Records[j]); err != nil {
				return nil, fmt.Errorf("%w: region %q: %v", ErrInvalidTable, region.Name, err)
			}
		}
	}

	return &table, nil
}

func normalize(r *Record) error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return errors.New("record without name")
	}
	if !(geo.Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}).Valid() {
		return fmt.Errorf("record %q has invalid coordinates", r.Name)
	}
	if r.Beds < 0 {
		return fmt.Errorf("record %q has negative beds", r.Name)
	}

	if r.Category == "" {
		r.Category = facilities.CategoryMultiSpecialty
	}
	if !facilities.IsCategory(r.Category) {
		return fmt.Errorf("record %q has unknown category %q", r.Name, r.Category)
	}

	if r.Ownership == "" {
		r.Ownership = facilities.OwnershipPrivate
	}
	if !facilities.IsOwnership(r.Ownership) {
		return fmt.Errorf("record %q has unknown ownership %q", r.Name, r.Ownership)
	}

	if len(r.Specialties) == 0 {
		r.Specialties = []string{facilities.SpecialtyGeneralMedicine}
	}
	for _, s := range r.Specialties {
		if !facilities.IsSpecialty(s) {
			return fmt.Errorf("record %q has unknown specialty %q", r.Name, s)
		}
	}

	if r.Address == "" {
		r.Address = facilities.AddressNotAvailable
	}
	if r.Phone == "" {
		r.Phone = facilities.PhoneNotAvailable
	}

	return nil
}
