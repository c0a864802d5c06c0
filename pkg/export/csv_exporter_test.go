package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	table := Table{
		Headers: []string{"Course", "Completed"},
		Rows: [][]string{
			{"Algebra", "3"},
			{"Biology", "1"},
		},
	}

	data, err := NewCSVExporter().Render(table)
	require.NoError(t, err)
	assert.Equal(t, "Course,Completed\nAlgebra,3\nBiology,1\n", string(data))
}

func TestCSVExporterPadsShortRows(t *testing.T) {
	table := Table{
		Headers: []string{"A", "B", "C"},
		Rows:    [][]string{{"only"}},
	}

	data, err := NewCSVExporter().Render(table)
	require.NoError(t, err)
	assert.Equal(t, "A,B,C\nonly,,\n", string(data))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Table{})
	require.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	table := Table{
		Headers: []string{"Course", "Completed"},
		Rows:    [][]string{{"Algebra", "3"}},
	}

	data, err := NewPDFExporter().Render(table, "Progress Report - Ana")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Table{}, "title")
	require.Error(t, err)
}
