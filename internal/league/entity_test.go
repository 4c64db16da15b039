package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntity(t *testing.T) {
	tests := []struct {
		name    string
		give    string
		want    Entity
		wantErr bool
	}{
		{"plural teams", "teams", EntityTeams, false},
		{"singular team", "team", EntityTeams, false},
		{"mixed case with space", "  Players ", EntityPlayers, false},
		{"singular season", "season", EntitySeasons, false},
		{"plural matches", "matches", EntityMatches, false},
		{"unknown entity", "referees", EntityTeams, true},
		{"empty string", "", EntityTeams, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntity(tt.give)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown entity")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntity_Labels(t *testing.T) {
	assert.Equal(t, "teams", EntityTeams.String())
	assert.Equal(t, "Teams", EntityTeams.Title())
	assert.Equal(t, "matches", EntityMatches.String())
	assert.Equal(t, "Matches", EntityMatches.Title())
}

func TestEntity_Toggleable(t *testing.T) {
	assert.True(t, EntityTeams.Toggleable())
	assert.True(t, EntityPlayers.Toggleable())
	assert.False(t, EntitySeasons.Toggleable())
	assert.False(t, EntityMatches.Toggleable())
}

func TestEntities_TabOrder(t *testing.T) {
	entities := Entities()
	require.Len(t, entities, 4)
	assert.Equal(t, EntityTeams, entities[0])
	assert.Equal(t, EntityMatches, entities[3])

	for _, entity := range entities {
		assert.NotEmpty(t, entity.Columns())
	}
}
