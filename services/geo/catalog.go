// Package geo holds the static location reference data used to validate
// and narrow a traveler's destination. The hierarchy is region ->
// district -> ward -> street; it is fixed reference data, not synced
// from any backend.
package geo

import (
	"fmt"

	"tembea/models"
)

type Street struct {
	Name string `json:"name"`
}

type Ward struct {
	Name    string   `json:"name"`
	Streets []Street `json:"streets,omitempty"`
}

type District struct {
	Name  string `json:"name"`
	Wards []Ward `json:"wards,omitempty"`
}

type Region struct {
	Name      string     `json:"name"`
	Districts []District `json:"districts"`
}

var regions = []Region{
	{
		Name: "Arusha",
		Districts: []District{
			{Name: "Arusha City", Wards: []Ward{
				{Name: "Kati", Streets: []Street{{Name: "Boma Road"}, {Name: "Sokoine Road"}}},
				{Name: "Themi", Streets: []Street{{Name: "Njiro Road"}}},
				{Name: "Sekei"},
			}},
			{Name: "Karatu", Wards: []Ward{
				{Name: "Karatu Mjini", Streets: []Street{{Name: "Ngorongoro Road"}}},
				{Name: "Rhotia"},
				{Name: "Mang'ola"},
			}},
			{Name: "Monduli", Wards: []Ward{{Name: "Monduli Mjini"}, {Name: "Mto wa Mbu"}}},
			{Name: "Ngorongoro"},
		},
	},
	{
		Name: "Kilimanjaro",
		Districts: []District{
			{Name: "Moshi Urban", Wards: []Ward{
				{Name: "Kilimanjaro", Streets: []Street{{Name: "Mawenzi Road"}}},
				{Name: "Rau"},
			}},
			{Name: "Moshi Rural", Wards: []Ward{{Name: "Marangu East"}, {Name: "Machame"}}},
			{Name: "Hai"},
			{Name: "Same"},
		},
	},
	{
		Name: "Dar es Salaam",
		Districts: []District{
			{Name: "Ilala", Wards: []Ward{
				{Name: "Kariakoo", Streets: []Street{{Name: "Uhuru Street"}, {Name: "Msimbazi Street"}}},
				{Name: "Upanga"},
			}},
			{Name: "Kinondoni", Wards: []Ward{{Name: "Msasani"}, {Name: "Mikocheni"}}},
			{Name: "Temeke"},
		},
	},
	{
		Name: "Mwanza",
		Districts: []District{
			{Name: "Nyamagana", Wards: []Ward{{Name: "Pamba"}, {Name: "Mirongo"}}},
			{Name: "Ilemela"},
		},
	},
	{
		Name: "Zanzibar Urban/West",
		Districts: []District{
			{Name: "Mjini", Wards: []Ward{
				{Name: "Stone Town", Streets: []Street{{Name: "Kenyatta Road"}, {Name: "Gizenga Street"}}},
				{Name: "Shangani"},
			}},
			{Name: "Magharibi", Wards: []Ward{{Name: "Fumba"}}},
		},
	},
	{
		Name: "Morogoro",
		Districts: []District{
			{Name: "Morogoro Urban", Wards: []Ward{{Name: "Boma"}}},
			{Name: "Mvomero"},
			{Name: "Kilosa"},
		},
	},
}

// Regions lists all region names in catalog order.
func Regions() []string {
	names := make([]string, 0, len(regions))
	for _, r := range regions {
		names = append(names, r.Name)
	}
	return names
}

func findRegion(region string) (*Region, bool) {
	for i := range regions {
		if regions[i].Name == region {
			return &regions[i], true
		}
	}
	return nil, false
}

func findDistrict(region, district string) (*District, bool) {
	r, ok := findRegion(region)
	if !ok {
		return nil, false
	}
	for i := range r.Districts {
		if r.Districts[i].Name == district {
			return &r.Districts[i], true
		}
	}
	return nil, false
}

func findWard(region, district, ward string) (*Ward, bool) {
	d, ok := findDistrict(region, district)
	if !ok {
		return nil, false
	}
	for i := range d.Wards {
		if d.Wards[i].Name == ward {
			return &d.Wards[i], true
		}
	}
	return nil, false
}

// Districts lists district names within a region.
func Districts(region string) ([]string, error) {
	r, ok := findRegion(region)
	if !ok {
		return nil, fmt.Errorf("unknown region %q", region)
	}
	names := make([]string, 0, len(r.Districts))
	for _, d := range r.Districts {
		names = append(names, d.Name)
	}
	return names, nil
}

// Wards lists ward names within a district. A district with no listed
// wards returns an empty slice, not an error.
func Wards(region, district string) ([]string, error) {
	d, ok := findDistrict(region, district)
	if !ok {
		return nil, fmt.Errorf("unknown district %q in region %q", district, region)
	}
	names := make([]string, 0, len(d.Wards))
	for _, w := range d.Wards {
		names = append(names, w.Name)
	}
	return names, nil
}

// Streets lists street names within a ward.
func Streets(region, district, ward string) ([]string, error) {
	w, ok := findWard(region, district, ward)
	if !ok {
		return nil, fmt.Errorf("unknown ward %q in %s, %s", ward, district, region)
	}
	names := make([]string, 0, len(w.Streets))
	for _, s := range w.Streets {
		names = append(names, s.Name)
	}
	return names, nil
}

// Validate checks a traveler's location against the catalog hierarchy.
// District implies region; ward implies district; street implies ward.
func Validate(loc models.Location) error {
	if loc.IsZero() {
		return nil
	}
	if loc.Region == "" {
		return fmt.Errorf("district requires a region")
	}
	if _, ok := findRegion(loc.Region); !ok {
		return fmt.Errorf("unknown region %q", loc.Region)
	}
	if loc.District == "" {
		if loc.Ward != "" || loc.Street != "" {
			return fmt.Errorf("ward requires a district")
		}
		return nil
	}
	if _, ok := findDistrict(loc.Region, loc.District); !ok {
		return fmt.Errorf("unknown district %q in region %q", loc.District, loc.Region)
	}
	if loc.Ward == "" {
		if loc.Street != "" {
			return fmt.Errorf("street requires a ward")
		}
		return nil
	}
	w, ok := findWard(loc.Region, loc.District, loc.Ward)
	if !ok {
		return fmt.Errorf("unknown ward %q in %s, %s", loc.Ward, loc.District, loc.Region)
	}
	if loc.Street == "" {
		return nil
	}
	for _, s := range w.Streets {
		if s.Name == loc.Street {
			return nil
		}
	}
	return fmt.Errorf("unknown street %q in ward %q", loc.Street, loc.Ward)
}
