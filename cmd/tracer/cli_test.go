package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/programmedesign/core/internal/models"
)

const programmeJSON = `{
	"nfqLevel": 8,
	"awardStandardIds": ["qqi-computing"],
	"plos": [
		{"id": "plo_1", "text": "Design software systems", "standardMappings": [{"criteria": "Knowledge", "thread": "Breadth"}]},
		{"id": "plo_2", "text": "Analyse problems"}
	],
	"ploToMimlos": {"plo_1": ["m1", "m2"]},
	"modules": [{
		"id": "mod_1", "code": "COMP101", "title": "Programming",
		"mimlos": [{"id": "m1", "text": "Write programs"}, {"id": "m2", "text": "Test programs"}],
		"assessments": [{"id": "a1", "title": "Assignment 1", "type": "Project", "weighting": 50, "mimloIds": ["m1"]}]
	}]
}`

const standardsYAML = `
id: qqi-computing
name: QQI Computing
levels:
  8:
    - {criteria: Knowledge, thread: Breadth}
    - {criteria: Competence, thread: Context}
`

func fixtureFiles(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	programme := filepath.Join(dir, "programme.json")
	standards := filepath.Join(dir, "standards.yaml")
	require.NoError(t, os.WriteFile(programme, []byte(programmeJSON), 0o644))
	require.NoError(t, os.WriteFile(standards, []byte(standardsYAML), 0o644))
	return programme, standards
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRowsCommand(t *testing.T) {
	programme, standards := fixtureFiles(t)

	t.Run("table lists every row and the summary", func(t *testing.T) {
		out, err := execute(t, "rows", "-p", programme, "-s", standards)

		require.NoError(t, err)
		assert.Contains(t, out, "Award Standard")
		assert.Contains(t, out, "Assignment 1")
		assert.Contains(t, out, "(Not assessed)")
		assert.Contains(t, out, "(No PLO covers this standard)")
		assert.Contains(t, out, "covered 1  assessment gaps 1  PLO gaps 1  standard gaps 1")
	})

	t.Run("json with status filter", func(t *testing.T) {
		out, err := execute(t, "rows", "-p", programme, "-s", standards, "-f", "json", "--status", "warning")

		require.NoError(t, err)
		var resp struct {
			Rows  []models.TraceRow `json:"rows"`
			Stats models.TraceStats `json:"stats"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		require.Len(t, resp.Rows, 1)
		assert.Equal(t, "2", resp.Rows[0].MIMLONum)
		assert.Equal(t, 4, resp.Stats.Total())
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := execute(t, "rows", "-p", programme, "--status", "excellent")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown status")
	})
}

func TestCoverageCommand(t *testing.T) {
	programme, standards := fixtureFiles(t)

	t.Run("table", func(t *testing.T) {
		out, err := execute(t, "coverage", "-p", programme, "-s", standards)

		require.NoError(t, err)
		assert.Contains(t, out, "QQI Computing")
		assert.Contains(t, out, "Context")
	})

	t.Run("without standards every standard reports zero", func(t *testing.T) {
		out, err := execute(t, "coverage", "-p", programme, "-f", "json")

		require.NoError(t, err)
		var records []models.CoverageRecord
		require.NoError(t, json.Unmarshal([]byte(out), &records))
		require.Len(t, records, 1)
		assert.Zero(t, records[0].TotalIndicators)
	})
}

func TestSankeyCommand(t *testing.T) {
	programme, standards := fixtureFiles(t)

	t.Run("json payload", func(t *testing.T) {
		out, err := execute(t, "sankey", "-p", programme, "-s", standards, "-f", "json")

		require.NoError(t, err)
		var payload models.SankeyPayload
		require.NoError(t, json.Unmarshal([]byte(out), &payload))
		assert.Equal(t, []string{"PLO 1", "COMP101", "COMP101 MIMLO 1", "COMP101: Assignment 1", "COMP101 MIMLO 2", "PLO 2"}, payload.Node.Label)
		assert.Equal(t, []int{2, 1, 1, 1}, payload.Link.Value)
	})

	t.Run("table lists links by label", func(t *testing.T) {
		out, err := execute(t, "sankey", "-p", programme, "-s", standards)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 5)
		assert.True(t, strings.HasPrefix(lines[1], "PLO 1"))
	})
}

func TestCommandErrors(t *testing.T) {
	programme, _ := fixtureFiles(t)

	t.Run("programme flag is required", func(t *testing.T) {
		_, err := execute(t, "rows")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "programme")
	})

	t.Run("missing programme file", func(t *testing.T) {
		_, err := execute(t, "rows", "-p", filepath.Join(t.TempDir(), "nope.json"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "read programme")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, "coverage", "-p", programme, "-f", "xml")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown format")
	})
}
