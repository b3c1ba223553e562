package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	day, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.True(t, day.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))

	stamp, err := ParseDate("2024-01-15T10:30:00+03:00")
	require.NoError(t, err)
	assert.True(t, stamp.Equal(time.Date(2024, 1, 15, 7, 30, 0, 0, time.UTC)))

	_, err = ParseDate("15.01.2024")
	assert.Error(t, err)
}

func TestCreateDailyChangeLogInput_DateForms(t *testing.T) {
	var calendar CreateDailyChangeLogInput
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-01-15","changes":[{"type":"bugfix","description":"fix","impact":"low"}]}`), &calendar))
	require.NotNil(t, calendar.Date)
	assert.True(t, calendar.Date.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	require.Len(t, calendar.Changes, 1)
	assert.Equal(t, "bugfix", calendar.Changes[0].Type)

	var rfc CreateDailyChangeLogInput
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-01-15T12:00:00Z","changes":[]}`), &rfc))
	require.NotNil(t, rfc.Date)
	assert.Equal(t, 12, rfc.Date.Hour())

	var missing CreateDailyChangeLogInput
	require.NoError(t, json.Unmarshal([]byte(`{"changes":[]}`), &missing))
	assert.Nil(t, missing.Date)

	var bad CreateDailyChangeLogInput
	assert.Error(t, json.Unmarshal([]byte(`{"date":"yesterday"}`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`{"date":20240115}`), &bad))
}

func TestMilestone_DueDateForms(t *testing.T) {
	var milestones []Milestone
	require.NoError(t, json.Unmarshal([]byte(`[
		{"name":"scene","completed":true,"due_date":"2024-03-01"},
		{"name":"ship","due_date":"2024-04-01T18:00:00Z"},
		{"name":"later","due_date":null}
	]`), &milestones))

	require.Len(t, milestones, 3)
	assert.True(t, milestones[0].Completed)
	assert.True(t, milestones[0].DueDate.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 18, milestones[1].DueDate.Hour())
	assert.Nil(t, milestones[2].DueDate)

	raw, err := json.Marshal(milestones[0])
	require.NoError(t, err)
	var back Milestone
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, milestones[0].Name, back.Name)
	assert.True(t, milestones[0].DueDate.Equal(*back.DueDate))
}
