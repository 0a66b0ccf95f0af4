package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalInfo_NullFieldsRoundTrip(t *testing.T) {
	name := "Jane Doe"
	info := PersonalInfo{Name: &name}

	data, err := json.Marshal(info)
	require.NoError(t, err)

	// Missing fields must serialize as explicit nulls, not be absent
	assert.JSONEq(t, `{
		"name": "Jane Doe",
		"email": null,
		"phone": null,
		"location": null,
		"linkedin": null,
		"github": null,
		"portfolio": null
	}`, string(data))
}

func TestPersonalInfo_DecodeNulls(t *testing.T) {
	raw := `{"name": "Jane Doe", "email": "jane@example.com", "phone": null, "location": null, "linkedin": null, "github": null, "portfolio": null}`

	var info PersonalInfo
	require.NoError(t, json.Unmarshal([]byte(raw), &info))

	require.NotNil(t, info.Name)
	assert.Equal(t, "Jane Doe", *info.Name)
	assert.Nil(t, info.Phone)
	assert.Nil(t, info.Portfolio)
}

func TestSaveJDRequest_Validate(t *testing.T) {
	valid := SaveJDRequest{Text: "Looking for a Go developer"}
	assert.NoError(t, valid.Validate())

	empty := SaveJDRequest{}
	assert.Error(t, empty.Validate())
}

func TestMatchOptions_Validate(t *testing.T) {
	valid := MatchOptions{JDText: "Backend engineer, Python and SQL"}
	assert.NoError(t, valid.Validate())

	empty := MatchOptions{}
	assert.Error(t, empty.Validate())
}
