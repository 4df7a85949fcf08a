package testutil

import (
	"writeyourmep/internal/directory"
	"writeyourmep/pkg/email"
)

// Addresses used by SampleDirectory.
const (
	JeanMartinEmail = "jean.martin@europarl.europa.eu"
	HansBeckerEmail = "hans.becker@europarl.europa.eu"
)

// SampleDirectory returns a fresh directory with one usable French member,
// two French members without a usable address, one German member and an
// empty Malta entry.
func SampleDirectory() directory.Directory {
	return directory.Directory{
		"France": {
			Representative("Jean Martin", email.Obfuscate(JeanMartinEmail), "France",
				"Renew Europe Group", "Renaissance"),
			Representative("Marie Dubois", "marie.dubois at europarl", "France", "", ""),
			Representative("Luc Bernard", "", "France", "", ""),
		},
		"Germany": {
			Representative("Hans Becker", email.Obfuscate(HansBeckerEmail), "Germany",
				"Group of the European People's Party (Christian Democrats)",
				"Christlich Demokratische Union Deutschlands"),
		},
		"Malta": {},
	}
}

// Representative builds a record, filling empty groups with directory.Unknown.
func Representative(name, storedEmail, country, group, nationalGroup string) directory.Representative {
	if group == "" {
		group = directory.Unknown
	}
	if nationalGroup == "" {
		nationalGroup = directory.Unknown
	}
	return directory.Representative{
		Name:            name,
		ObfuscatedEmail: storedEmail,
		PoliticalGroup:  group,
		NationalGroup:   nationalGroup,
		Country:         country,
	}
}
