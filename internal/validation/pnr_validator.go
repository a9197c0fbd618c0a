package validation

import (
	"pnrcheck/internal/personnummer"
)

type PersonnummerValidator interface {
	ValidatePersonnummer(pnr string) bool
}

type DefaultPNRValidator struct{}

func NewDefaultPNRValidator() *DefaultPNRValidator {
	return &DefaultPNRValidator{}
}

func (v *DefaultPNRValidator) ValidatePersonnummer(pnr string) bool {
	return personnummer.Valid(pnr)
}
