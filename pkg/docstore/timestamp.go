package docstore

import (
	"encoding/json"
	"time"
)

// Ключи нативной метки времени хранилища: {"_seconds": ..., "_nanoseconds": ...}
const (
	secondsKey     = "_seconds"
	nanosecondsKey = "_nanoseconds"
)

// Timestamp нативное представление времени в документах
type Timestamp struct {
	Seconds     int64 `json:"_seconds"`
	Nanoseconds int64 `json:"_nanoseconds"`
}

// NewTimestamp конвертирует time.Time в Timestamp
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Seconds: t.Unix(), Nanoseconds: int64(t.Nanosecond())}
}

// Time возвращает время в UTC
func (ts Timestamp) Time() time.Time {
	return time.Unix(ts.Seconds, ts.Nanoseconds).UTC()
}

// timestampFromMap распознаёт Timestamp в декодированном JSON объекте
func timestampFromMap(m map[string]interface{}) (Timestamp, bool) {
	if len(m) != 2 {
		return Timestamp{}, false
	}

	seconds, ok := toInt64(m[secondsKey])
	if !ok {
		return Timestamp{}, false
	}
	nanos, ok := toInt64(m[nanosecondsKey])
	if !ok {
		return Timestamp{}, false
	}

	return Timestamp{Seconds: seconds, Nanoseconds: nanos}, true
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		return int64(n), n == float64(int64(n))
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}
