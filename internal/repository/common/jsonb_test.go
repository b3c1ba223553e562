package common

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type milestoneDoc struct {
	Name    string     `json:"name"`
	DueDate *time.Time `json:"due_date"`
}

func TestJSONB_RoundTripRestoresDates(t *testing.T) {
	due := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	in := NewJSONB([]milestoneDoc{{Name: "design", DueDate: &due}, {Name: "ship"}})

	raw, err := in.Value()
	require.NoError(t, err)

	var out JSONB[[]milestoneDoc]
	require.NoError(t, out.Scan([]byte(raw.(string))))

	if diff := cmp.Diff(in.V, out.V); diff != "" {
		t.Fatalf("milestones mismatch (-want +got):\n%s", diff)
	}
	require.NotNil(t, out.V[0].DueDate)
	assert.True(t, due.Equal(*out.V[0].DueDate))
}

func TestJSONB_ScanNull(t *testing.T) {
	out := NewJSONB([]string{"x"})
	require.NoError(t, out.Scan(nil))
	assert.Nil(t, out.V)
}

func TestJSONB_ScanInvalid(t *testing.T) {
	var out JSONB[map[string]float64]
	assert.Error(t, out.Scan("{not json"))
	assert.Error(t, out.Scan(42))
}

func TestUpdateBuilder_Build(t *testing.T) {
	var b UpdateBuilder
	b.Set("title", "Demo")
	b.Set("scale", Decimal(2))

	query, args := b.Build("portfolio_artifacts", 7, "id")

	assert.Equal(t, "UPDATE portfolio_artifacts SET title = $1, scale = $2, updated_at = NOW() WHERE id = $3 RETURNING id", query)
	assert.Equal(t, []interface{}{"Demo", Decimal(2), int64(7)}, args)
}

func TestUpdateBuilder_OnlyTimestamp(t *testing.T) {
	var b UpdateBuilder
	query, args := b.Build("progress_trackers", 1, "*")

	assert.Equal(t, "UPDATE progress_trackers SET updated_at = NOW() WHERE id = $1 RETURNING *", query)
	assert.Equal(t, []interface{}{int64(1)}, args)
}
