package post

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func TestNewPost(t *testing.T) {
	scheduled := now.Add(24 * time.Hour)

	tests := []struct {
		name      string
		content   string
		status    Status
		scheduled *time.Time
		wantErr   error
		published bool
	}{
		{"draft", "hello", StatusDraft, nil, nil, false},
		{"published stamps time", "hello", StatusPublished, nil, nil, true},
		{"scheduled with time", "hello", StatusScheduled, &scheduled, nil, false},
		{"scheduled without time", "hello", StatusScheduled, nil, ErrMissingSchedule, false},
		{"blank content", "   ", StatusDraft, nil, ErrEmptyContent, false},
		{"unknown status", "hello", Status("archived"), nil, ErrInvalidStatus, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPost("id-1", tt.content, nil, tt.scheduled, tt.status, nil, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, now, p.CreatedAt)
			assert.NotNil(t, p.Platforms)
			if tt.published {
				require.NotNil(t, p.PublishedAt)
				assert.Equal(t, now, *p.PublishedAt)
			} else {
				assert.Nil(t, p.PublishedAt)
			}
		})
	}
}

func TestApplyPublishTransition(t *testing.T) {
	p, err := NewPost("id-1", "draft text", []string{"instagram"}, nil, StatusDraft, nil, now)
	require.NoError(t, err)

	later := now.Add(time.Hour)
	published := StatusPublished
	content := "final text"
	require.NoError(t, p.Apply(Patch{Content: &content, Status: &published}, later))

	assert.Equal(t, "final text", p.Content)
	assert.Equal(t, StatusPublished, p.Status)
	require.NotNil(t, p.PublishedAt)
	assert.Equal(t, later, *p.PublishedAt)

	// Re-publishing keeps the original timestamp.
	require.NoError(t, p.Apply(Patch{Status: &published}, later.Add(time.Hour)))
	assert.Equal(t, later, *p.PublishedAt)
}

func TestApplyRejectsInvalidChanges(t *testing.T) {
	p, err := NewPost("id-1", "text", nil, nil, StatusDraft, nil, now)
	require.NoError(t, err)

	blank := ""
	assert.ErrorIs(t, p.Apply(Patch{Content: &blank}, now), ErrEmptyContent)

	scheduled := StatusScheduled
	assert.ErrorIs(t, p.Apply(Patch{Status: &scheduled}, now), ErrMissingSchedule)

	bogus := Status("bogus")
	assert.ErrorIs(t, p.Apply(Patch{Status: &bogus}, now), ErrInvalidStatus)
	assert.Equal(t, StatusDraft, p.Status)
}
