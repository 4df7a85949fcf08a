package models

import "writeyourmep/internal/letter"

// Representative is a directory entry whose address has been recovered and
// validated.
type Representative struct {
	Name           string
	Email          string
	PoliticalGroup string
	NationalGroup  string
}

// SendCommand carries everything needed to build a mailto link.
type SendCommand struct {
	Fields        letter.Fields
	MEPEmail      string
	UserEmail     string
	CustomSubject string
	CustomBody    string
}

// Mailto is a ready-to-open link and the recipient it addresses.
type Mailto struct {
	Link     string
	MEPName  string
	MEPEmail string
}
