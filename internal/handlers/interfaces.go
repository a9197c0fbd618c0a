package handlers

type PersonnummerValidator interface {
	ValidatePersonnummer(pnr string) bool
}
