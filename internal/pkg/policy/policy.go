// Package policy loads the campus policy file: timezone, operating hours and
// the accounts and rooms created by the seed command.
package policy

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"
	_ "time/tzdata" // campus zone must resolve in minimal images

	"room-reservation/internal/domain/reservation"

	"gopkg.in/yaml.v3"
)

type Policy struct {
	Timezone       string      `yaml:"timezone"`
	OperatingHours HoursConfig `yaml:"operating_hours"`
	Seed           SeedConfig  `yaml:"seed"`
}

type HoursConfig struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

type SeedConfig struct {
	Users []SeedUser `yaml:"users"`
	Rooms []SeedRoom `yaml:"rooms"`
}

// SeedUser passwords are plain text and hashed by the seed command.
type SeedUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type SeedRoom struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Capacity    int    `yaml:"capacity"`
	Location    string `yaml:"location"`
	ImageURL    string `yaml:"image_url"`
	Active      *bool  `yaml:"active"`
}

func (r SeedRoom) IsActive() bool {
	return r.Active == nil || *r.Active
}

func Default() *Policy {
	p := &Policy{}
	p.applyDefaults()
	return p
}

// Load reads the policy from path. An empty path or a missing file yields the
// built-in defaults.
func Load(path string) (*Policy, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to open policy file: %w", err)
	}
	defer f.Close()

	var p Policy
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode policy file: %w", err)
	}

	p.applyDefaults()
	if _, err := p.Hours(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Policy) applyDefaults() {
	if p.Timezone == "" {
		p.Timezone = reservation.DefaultTimeZone
	}
	if p.OperatingHours.Open == "" {
		p.OperatingHours.Open = reservation.DefaultOpen
	}
	if p.OperatingHours.Close == "" {
		p.OperatingHours.Close = reservation.DefaultClose
	}
}

// Hours builds the operating hours in the campus timezone.
func (p *Policy) Hours() (reservation.OperatingHours, error) {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return reservation.OperatingHours{}, fmt.Errorf("invalid policy timezone %q: %w", p.Timezone, err)
	}
	hours, err := reservation.NewOperatingHours(p.OperatingHours.Open, p.OperatingHours.Close, loc)
	if err != nil {
		return reservation.OperatingHours{}, fmt.Errorf("invalid operating hours: %w", err)
	}
	return hours, nil
}
