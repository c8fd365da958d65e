package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRenderKeepsHeaderOrder(t *testing.T) {
	exporter := NewCSVExporter()

	payload, err := exporter.Render(Dataset{
		Headers: []string{"Code", "Name", "Credits"},
		Rows: []map[string]string{
			{"Name": "Data Structures", "Code": "CS 1332", "Credits": "3"},
			{"Code": "PSYC 1101"},
		},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(payload)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Code,Name,Credits", lines[0])
	assert.Equal(t, "CS 1332,Data Structures,3", lines[1])
	assert.Equal(t, "PSYC 1101,,", lines[2], "missing cells render empty")
}

func TestDatasetValidateRejectsUndeclaredColumn(t *testing.T) {
	dataset := Dataset{
		Headers: []string{"Category", "Status"},
		Rows: []map[string]string{
			{"Category": "Humanities", "Percentage": "40"},
		},
	}

	err := dataset.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Percentage")

	_, err = NewCSVExporter().Render(dataset)
	assert.Error(t, err)
}

func TestDatasetValidateRequiresHeaders(t *testing.T) {
	assert.Error(t, Dataset{}.Validate())
}
