// Package directory loads the representatives resource and serves an
// immutable, country-indexed snapshot of it.
package directory

import (
	"encoding/json"
	"sort"
	"strings"

	"writeyourmep/pkg/email"
)

// Unknown fills missing name and group fields.
const Unknown = "Unknown"

// Representative is a single MEP as stored in the directory. Email is kept in
// its obfuscated storage form; the usable address is derived on demand.
type Representative struct {
	Name            string
	ObfuscatedEmail string
	PoliticalGroup  string
	NationalGroup   string
	Country         string
}

// Email recovers the contact address. It reports false when the stored
// value does not decode to a valid address.
func (r Representative) Email() (string, bool) {
	return email.Recover(r.ObfuscatedEmail)
}

// Directory maps a country name to its representatives in source order.
type Directory map[string][]Representative

// Countries returns the country names in ascending order.
func (d Directory) Countries() []string {
	countries := make([]string, 0, len(d))
	for country := range d {
		countries = append(countries, country)
	}
	sort.Strings(countries)
	return countries
}

// Size returns the total number of representatives across all countries.
func (d Directory) Size() int {
	n := 0
	for _, reps := range d {
		n += len(reps)
	}
	return n
}

// record mirrors the JSON shape of one entry in the resource file.
type record struct {
	FullName    []string `json:"fullName"`
	ContactData struct {
		Email string `json:"email"`
	} `json:"contact_data"`
	PoliticalGroup         []string `json:"politicalGroup"`
	NationalPoliticalGroup []string `json:"nationalPoliticalGroup"`
}

func (rec record) toRepresentative(country string) Representative {
	return Representative{
		Name:            firstOrUnknown(rec.FullName),
		ObfuscatedEmail: rec.ContactData.Email,
		PoliticalGroup:  firstOrUnknown(rec.PoliticalGroup),
		NationalGroup:   firstOrUnknown(rec.NationalPoliticalGroup),
		Country:         country,
	}
}

func firstOrUnknown(values []string) string {
	if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return Unknown
	}
	return values[0]
}

// Parse decodes the resource format: an object keyed by country whose values
// are arrays of member records.
func Parse(raw []byte) (Directory, error) {
	var doc map[string][]record
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	dir := make(Directory, len(doc))
	for country, records := range doc {
		if country == "" {
			continue
		}
		reps := make([]Representative, 0, len(records))
		for _, rec := range records {
			reps = append(reps, rec.toRepresentative(country))
		}
		dir[country] = reps
	}
	return dir, nil
}
