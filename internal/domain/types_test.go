package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskEscalate(t *testing.T) {
	assert.Equal(t, RiskMedium, RiskLow.Escalate())
	assert.Equal(t, RiskHigh, RiskMedium.Escalate())
	assert.Equal(t, RiskHigh, RiskHigh.Escalate())
	assert.Less(t, RiskLow.Rank(), RiskMedium.Rank())
	assert.Less(t, RiskMedium.Rank(), RiskHigh.Rank())
}

func TestParseExportFormat(t *testing.T) {
	for in, want := range map[string]ExportFormat{"": FormatCSV, "CSV": FormatCSV, "json": FormatJSON, " excel ": FormatExcel, "pdf": FormatPDF} {
		got, err := ParseExportFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseExportFormat("xml")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestParseCohort(t *testing.T) {
	got, err := ParseCohort("")
	require.NoError(t, err)
	assert.Equal(t, CohortAll, got)

	got, err = ParseCohort("High_Risk")
	require.NoError(t, err)
	assert.Equal(t, CohortHighRisk, got)

	_, err = ParseCohort("vip")
	assert.True(t, IsValidation(err))
}
