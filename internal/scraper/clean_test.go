package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims", "  Junior QA  ", "Junior QA"},
		{"collapses spaces", "Python \t  Developer", "Python Developer"},
		{"keeps paragraphs", "About the role\n\n\n  We need   1 year of experience  \r\n", "About the role\nWe need 1 year of experience"},
		{"nbsp", "51-200\u00a0employees", "51-200 employees"},
		{"nfc", "Cafe\u0301", "Caf\u00e9"},
		{"empty", " \n\t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, TitleNotFound, OrDefault("   ", TitleNotFound))
	assert.Equal(t, "Acme", OrDefault(" Acme\n", CompanyNotFound))
}
