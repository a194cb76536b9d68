package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("1973-06-06")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1973, 6, 6, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("06/06/1973")
	assert.Error(t, err)
}

func TestDateMarshalJSON(t *testing.T) {
	assert.Nil(t, NewDate(nil))
	assert.Nil(t, NewDate(&time.Time{}))

	b, err := json.Marshal(struct {
		Born *Date `json:"born"`
		Died *Date `json:"died"`
	}{Born: NewDate(day(1920, 1, 2))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"born":"1920-01-02","died":null}`, string(b))
}
