package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type creatureStruct struct {
	Name string `validate:"creature"`
}

func TestValidator_CreatureValidation(t *testing.T) {
	v := GetValidator()
	assert.Same(t, v, GetValidator())

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"dex name", "pikachu", false},
		{"numeric id", "25", false},
		{"hyphenated", "mr-mime", false},
		{"display form", "Mr. Mime", false},
		{"apostrophe", "farfetch'd", false},
		{"empty", "", true},
		{"leading hyphen", "-pikachu", true},
		{"path traversal", "../etc/passwd", true},
		{"query injection", "pikachu?limit=1", true},
		{"too long", strings.Repeat("a", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(creatureStruct{Name: tt.input})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_TeamRequest(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		req     StartBattleRequest
		wantErr bool
	}{
		{"named teams", StartBattleRequest{Red: TeamRequest{Creatures: []string{"pikachu"}}, Blue: TeamRequest{Random: 3}}, false},
		{"level bounds", StartBattleRequest{Red: TeamRequest{Random: 1, Level: 100}, Blue: TeamRequest{Random: 1, Level: 1}}, false},
		{"level too high", StartBattleRequest{Red: TeamRequest{Random: 1, Level: 101}}, true},
		{"too many randoms", StartBattleRequest{Red: TeamRequest{Random: 7}}, true},
		{"too many names", StartBattleRequest{Red: TeamRequest{Creatures: []string{"a", "b", "c", "d", "e", "f", "g"}}}, true},
		{"blank creature", StartBattleRequest{Red: TeamRequest{Creatures: []string{""}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(StartBattleRequest{
		Red:  TeamRequest{Creatures: []string{"../x"}},
		Blue: TeamRequest{Random: 9, Level: 500},
	})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Invalid creature name or id", fields["red.creatures[0]"])
	assert.Equal(t, "Must be at most 6", fields["blue.random"])
	assert.Equal(t, "Must be at most 100", fields["blue.level"])

	err = v.ValidateStruct(StartBattleRequest{Red: TeamRequest{Creatures: []string{"a", "b", "c", "d", "e", "f", "g"}}})
	require.Error(t, err)
	assert.Equal(t, "Must have at most 6 entries", FormatValidationError(err)["red.creatures"])

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}
