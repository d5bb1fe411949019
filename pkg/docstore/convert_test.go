package docstore

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Price     float64    `json:"price"`
	Tags      []string   `json:"tags"`
	From      time.Time  `json:"from"`
	Cancelled *time.Time `json:"cancelled,omitempty"`
	Deck      *int       `json:"deck,omitempty"`
	Internal  string     `json:"-"`
}

func TestNormalize_RewritesNestedTimestamps(t *testing.T) {
	at := time.Date(2025, 1, 10, 12, 30, 0, 500, time.UTC)
	ts := map[string]interface{}{"_seconds": json.Number("1736512200"), "_nanoseconds": json.Number("500")}

	in := map[string]interface{}{
		"createdAt": ts,
		"nested": map[string]interface{}{
			"list": []interface{}{ts, "plain", json.Number("3")},
		},
		"title": "Room",
	}

	out, ok := Normalize(in).(map[string]interface{})
	require.True(t, ok)

	assert.Equal(t, at, out["createdAt"])
	list := out["nested"].(map[string]interface{})["list"].([]interface{})
	assert.Equal(t, at, list[0])
	assert.Equal(t, "plain", list[1])
	assert.Equal(t, json.Number("3"), list[2])
	assert.Equal(t, "Room", out["title"])
}

func TestNormalize_KeepsLookalikeObjects(t *testing.T) {
	in := map[string]interface{}{
		"_seconds":     "not a number",
		"_nanoseconds": json.Number("1"),
	}
	assert.Equal(t, in, Normalize(in))

	extra := map[string]interface{}{
		"_seconds":     json.Number("1"),
		"_nanoseconds": json.Number("1"),
		"other":        true,
	}
	assert.Equal(t, extra, Normalize(extra))
}

func TestNormalize_ScalarsAndNil(t *testing.T) {
	assert.Nil(t, Normalize(nil))
	assert.Equal(t, 42, Normalize(42))
	assert.Equal(t, "x", Normalize("x"))
}

func TestFromDocument_Nil(t *testing.T) {
	rec, err := FromDocument[testRecord](nil)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestToFields_FromDocument_RoundTrip(t *testing.T) {
	from := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	cancelled := time.Date(2025, 1, 5, 8, 0, 0, 0, time.UTC)
	deck := 2

	fields, err := ToFields(testRecord{
		ID:        "ignored",
		Name:      "Sea View",
		Price:     100,
		Tags:      []string{"a", "b"},
		From:      from,
		Cancelled: &cancelled,
		Deck:      &deck,
		Internal:  "secret",
	})
	require.NoError(t, err)

	assert.NotContains(t, fields, "id")
	assert.NotContains(t, fields, "Internal")
	assert.Equal(t, map[string]interface{}{"_seconds": from.Unix(), "_nanoseconds": int64(0)}, fields["from"])

	// Эмулируем чтение из хранилища: JSON с числами как json.Number
	raw, err := EncodeData(fields)
	require.NoError(t, err)
	data, err := DecodeData(raw)
	require.NoError(t, err)

	rec, err := FromDocument[testRecord](&Document{ID: "doc-1", Collection: "rooms", Data: data})
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "doc-1", rec.ID)
	assert.Equal(t, "Sea View", rec.Name)
	assert.Equal(t, 100.0, rec.Price)
	assert.Equal(t, []string{"a", "b"}, rec.Tags)
	assert.True(t, from.Equal(rec.From))
	require.NotNil(t, rec.Cancelled)
	assert.True(t, cancelled.Equal(*rec.Cancelled))
	require.NotNil(t, rec.Deck)
	assert.Equal(t, 2, *rec.Deck)
	assert.Empty(t, rec.Internal)
}

func TestToFields_OmitsEmptyOptional(t *testing.T) {
	fields, err := ToFields(testRecord{Name: "x"})
	require.NoError(t, err)

	assert.NotContains(t, fields, "cancelled")
	assert.NotContains(t, fields, "deck")
	assert.Equal(t, []interface{}{}, fields["tags"])
}

func TestToFields_RejectsNonObject(t *testing.T) {
	_, err := ToFields([]string{"a"})
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestFromDocument_TypeMismatch(t *testing.T) {
	_, err := FromDocument[testRecord](&Document{ID: "x", Data: map[string]interface{}{"price": "cheap"}})
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestEncodeValue_Time(t *testing.T) {
	at := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)
	v, err := EncodeValue(at)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"_seconds": at.Unix(), "_nanoseconds": int64(0)}, v)
}
