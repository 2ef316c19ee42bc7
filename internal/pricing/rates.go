package pricing

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// RateTable holds every price and discount constant the calculator uses.
// It is passed by value so a Calculator never observes later edits.
type RateTable struct {
	Currency    string          `yaml:"currency"`
	ReadingRoom ReadingRoomRate `yaml:"reading_room"`
	Hostel      float64         `yaml:"hostel"`
	Bulk        BulkRule        `yaml:"bulk"`
	Bundle      BundleRule      `yaml:"bundle"`
}

type ReadingRoomRate struct {
	AC    float64 `yaml:"ac"`
	NonAC float64 `yaml:"non_ac"`
}

type BulkRule struct {
	MinMonths int     `yaml:"min_months"`
	Percent   float64 `yaml:"percent"`
}

type BundleRule struct {
	Amount float64 `yaml:"amount"`
}

func DefaultRates() RateTable {
	return RateTable{
		Currency:    "NPR",
		ReadingRoom: ReadingRoomRate{AC: 3750, NonAC: 3500},
		Hostel:      14500,
		Bulk:        BulkRule{MinMonths: 6, Percent: 10},
		Bundle:      BundleRule{Amount: 500},
	}
}

// LoadRates overlays the YAML file at path on top of DefaultRates.
// An empty path returns the defaults.
func LoadRates(path string) (RateTable, error) {
	rates := DefaultRates()
	if path == "" {
		return rates, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return RateTable{}, errors.Wrap(err, "read rate table")
	}
	if err := yaml.Unmarshal(raw, &rates); err != nil {
		return RateTable{}, errors.Wrapf(err, "parse rate table %s", path)
	}
	if err := rates.Validate(); err != nil {
		return RateTable{}, err
	}
	return rates, nil
}

func (r RateTable) Validate() error {
	switch {
	case r.Currency == "":
		return errors.New("rate table: currency is required")
	case r.ReadingRoom.AC < 0 || r.ReadingRoom.NonAC < 0 || r.Hostel < 0:
		return errors.New("rate table: unit prices must not be negative")
	case r.Bulk.MinMonths < 1:
		return errors.New("rate table: bulk.min_months must be at least 1")
	case r.Bulk.Percent < 0 || r.Bulk.Percent > 100:
		return errors.New("rate table: bulk.percent must be between 0 and 100")
	case r.Bundle.Amount < 0:
		return errors.New("rate table: bundle.amount must not be negative")
	}
	return nil
}
