package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTaxStatus(t *testing.T) {
	tests := []struct {
		in     string
		want   TaxStatus
		wantOK bool
	}{
		{"InUse", TaxStatusInUse, true},
		{"notinuse", TaxStatusNotInUse, true},
		{" InUse ", TaxStatusInUse, true},
		{"Archived", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTaxStatus(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaxStatus_String(t *testing.T) {
	assert.Equal(t, "InUse", TaxStatusInUse.String())
	assert.Equal(t, "NotInUse", TaxStatusNotInUse.String())
	assert.Equal(t, "Unknown", TaxStatus(9).String())
	assert.False(t, TaxStatus(0).Valid())
}

func TestParseTaxOrderBy(t *testing.T) {
	for orderBy := TaxOrderBySalaryMinAsc; orderBy <= TaxOrderByTimestampDesc; orderBy++ {
		got, ok := ParseTaxOrderBy(orderBy.String())
		assert.True(t, ok, orderBy.String())
		assert.Equal(t, orderBy, got)
	}

	_, ok := ParseTaxOrderBy("Salary")
	assert.False(t, ok)
}
