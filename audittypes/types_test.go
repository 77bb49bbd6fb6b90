package audittypes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Field(t *testing.T) {
	record := Record{
		"name":   StringValue("checking"),
		"absent": {},
	}

	value, ok := record.Field("name")
	assert.True(t, ok)
	assert.Equal(t, "checking", value.Text())

	// A missing field and an explicit absent value behave identically.
	_, ok = record.Field("nope")
	assert.False(t, ok)
	_, ok = record.Field("absent")
	assert.False(t, ok)
}

func TestValue_Text(t *testing.T) {
	assert.Equal(t, "hello", StringValue("hello").Text())
	assert.Equal(t, "1042.55", NumberValue("1042.55").Text())
	assert.Equal(t, "true", BoolValue(true).Text())
	assert.Equal(t, "false", BoolValue(false).Text())
	assert.Equal(t, "", Value{}.Text())
}

func TestValue_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Record{
		"name":    StringValue("checking"),
		"balance": NumberValue("1042.55"),
		"active":  BoolValue(true),
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "checking", decoded["name"])
	assert.Equal(t, 1042.55, decoded["balance"])
	assert.Equal(t, true, decoded["active"])
}

func TestValue_Comparable(t *testing.T) {
	groups := map[Value]int{}
	groups[StringValue("A")]++
	groups[StringValue("A")]++
	groups[NumberValue("1")]++
	groups[StringValue("1")]++

	assert.Equal(t, 2, groups[StringValue("A")])
	assert.Equal(t, 1, groups[NumberValue("1")], "kinds do not collide")
}
