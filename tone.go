package tone3000

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Gear categorizes the equipment a tone was captured from, mirroring the
// remote schema.
type Gear string

const (
	GearAmp      Gear = "amp"
	GearPedal    Gear = "pedal"
	GearPedalAmp Gear = "pedal_amp"
	GearFullRig  Gear = "full_rig"
	GearOutboard Gear = "outboard"
	GearIR       Gear = "ir"
)

// Size is a model's architecture size, from heaviest to lightest.
type Size string

const (
	SizeStandard Size = "standard"
	SizeLite     Size = "lite"
	SizeFeather  Size = "feather"
	SizeNano     Size = "nano"
)

// Sort orders tone search results.
type Sort string

const (
	SortNewest    Sort = "newest"
	SortOldest    Sort = "oldest"
	SortPopular   Sort = "popular"
	SortDownloads Sort = "downloads"
)

// Tone is a published tone profile.
type Tone struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Gear        Gear       `json:"gear"`
	GearMake    string     `json:"gear_make,omitempty"`
	GearModel   string     `json:"gear_model,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	User        *User      `json:"user,omitempty"`
	ModelCount  int        `json:"model_count"`
	Downloads   int        `json:"downloads"`
	Favorites   int        `json:"favorites"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

type ToneList struct {
	Meta  ListMeta `json:"meta"`
	Items []Tone   `json:"tones"`
}

// SearchOptions narrows a tone search. Zero values are omitted from the
// query.
type SearchOptions struct {
	ListOptions
	Query string
	Sort  Sort
	Gear  []Gear
	Sizes []Size
}

func (o SearchOptions) queryParams() map[string]string {
	queryParams := o.ListOptions.queryParams()
	if o.Query != "" {
		queryParams["query"] = o.Query
	}
	if o.Sort != "" {
		queryParams["sort"] = string(o.Sort)
	}
	if len(o.Gear) > 0 {
		gear := make([]string, len(o.Gear))
		for i, g := range o.Gear {
			gear[i] = string(g)
		}
		queryParams["gear"] = strings.Join(gear, ",")
	}
	if len(o.Sizes) > 0 {
		sizes := make([]string, len(o.Sizes))
		for i, s := range o.Sizes {
			sizes[i] = string(s)
		}
		queryParams["sizes"] = strings.Join(sizes, ",")
	}
	return queryParams
}

func (o SearchOptions) validate() error {
	switch o.Sort {
	case "", SortNewest, SortOldest, SortPopular, SortDownloads:
	default:
		return errors.Errorf("unknown sort %q", o.Sort)
	}
	for _, g := range o.Gear {
		switch g {
		case GearAmp, GearPedal, GearPedalAmp, GearFullRig, GearOutboard,
			GearIR:
		default:
			return errors.Errorf("unknown gear %q", g)
		}
	}
	for _, s := range o.Sizes {
		switch s {
		case SizeStandard, SizeLite, SizeFeather, SizeNano:
		default:
			return errors.Errorf("unknown size %q", s)
		}
	}
	return nil
}
