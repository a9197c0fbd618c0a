package testutils

import (
	"github.com/stretchr/testify/mock"
)

type MockPersonnummerValidator struct {
	mock.Mock
}

func (m *MockPersonnummerValidator) ValidatePersonnummer(pnr string) bool {
	args := m.Called(pnr)
	return args.Bool(0)
}
