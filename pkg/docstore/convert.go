package docstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// Normalize рекурсивно заменяет нативные метки времени хранилища на time.Time
// во вложенных объектах и массивах. Остальные значения возвращаются без изменений.
func Normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		if ts, ok := timestampFromMap(val); ok {
			return ts.Time()
		}
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = Normalize(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = Normalize(item)
		}
		return out
	case Timestamp:
		return val.Time()
	case *Timestamp:
		if val == nil {
			return nil
		}
		return val.Time()
	default:
		return v
	}
}

// FromDocument конвертирует документ в типизированную запись T
// Для отсутствующего документа возвращает nil, nil.
// Поле "id" записи заполняется идентификатором документа.
func FromDocument[T any](doc *Document) (*T, error) {
	if doc == nil {
		return nil, nil
	}

	data := make(map[string]interface{}, len(doc.Data)+1)
	for k, v := range doc.Data {
		data[k] = v
	}
	data["id"] = doc.ID

	raw, err := json.Marshal(Normalize(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%s - marshal: %v", ErrInvalidDocument, doc.Collection, doc.ID, err)
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %s/%s - decode: %v", ErrInvalidDocument, doc.Collection, doc.ID, err)
	}
	return &out, nil
}

// FromDocuments конвертирует список документов, пропуская nil
func FromDocuments[T any](docs []*Document) ([]*T, error) {
	out := make([]*T, 0, len(docs))
	for _, doc := range docs {
		item, err := FromDocument[T](doc)
		if err != nil {
			return nil, err
		}
		if item != nil {
			out = append(out, item)
		}
	}
	return out, nil
}

// ToFields конвертирует структуру (или map) в поля документа
// time.Time сохраняется как Timestamp, имена полей берутся из json-тегов.
// Поле "id" не сохраняется: идентификатор хранится отдельно от данных.
func ToFields(v interface{}) (map[string]interface{}, error) {
	encoded, err := EncodeValue(v)
	if err != nil {
		return nil, err
	}

	fields, ok := encoded.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %T", ErrInvalidDocument, v)
	}
	delete(fields, "id")
	return fields, nil
}

// EncodeValue приводит значение к нативному представлению хранилища
// Используется и для полей документа, и для значений фильтров.
func EncodeValue(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	return encodeReflect(reflect.ValueOf(v))
}

func encodeReflect(rv reflect.Value) (interface{}, error) {
	if !rv.IsValid() {
		return nil, nil
	}

	if rv.CanInterface() {
		switch val := rv.Interface().(type) {
		case time.Time:
			return timestampFields(val), nil
		case json.Number:
			return val, nil
		}
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return encodeReflect(rv.Elem())

	case reflect.Struct:
		return encodeStruct(rv)

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: unsupported map key %s", ErrInvalidDocument, rv.Type().Key())
		}
		if rv.IsNil() {
			return nil, nil
		}
		out := make(map[string]interface{}, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			item, err := encodeReflect(iter.Value())
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = item
		}
		return out, nil

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []interface{}{}, nil
		}
		out := make([]interface{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item, err := encodeReflect(rv.Index(i))
			if err != nil {
				return nil, err
			}
			out[i] = item
		}
		return out, nil

	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil

	default:
		return nil, fmt.Errorf("%w: unsupported type %s", ErrInvalidDocument, rv.Type())
	}
}

func encodeStruct(rv reflect.Value) (map[string]interface{}, error) {
	if ts, ok := rv.Interface().(Timestamp); ok {
		return timestampFields(ts.Time()), nil
	}

	rt := rv.Type()
	out := make(map[string]interface{}, rt.NumField())

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		name, omitEmpty := parseTag(field)
		if name == "-" {
			continue
		}

		fv := rv.Field(i)
		if omitEmpty && isEmpty(fv) {
			continue
		}

		item, err := encodeReflect(fv)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		out[name] = item
	}
	return out, nil
}

func parseTag(field reflect.StructField) (name string, omitEmpty bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "-", false
	}

	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = field.Name
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil() || (v.Kind() != reflect.Ptr && v.Kind() != reflect.Interface && v.Len() == 0)
	case reflect.String, reflect.Array:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	}
	if v.Type() == timeType {
		return v.Interface().(time.Time).IsZero()
	}
	return false
}

func timestampFields(t time.Time) map[string]interface{} {
	ts := NewTimestamp(t)
	return map[string]interface{}{
		secondsKey:     ts.Seconds,
		nanosecondsKey: ts.Nanoseconds,
	}
}

// DecodeData декодирует JSON документа, сохраняя числа как json.Number
func DecodeData(raw []byte) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var data map[string]interface{}
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if data == nil {
		data = map[string]interface{}{}
	}
	return data, nil
}

// EncodeData сериализует поля документа в JSON
func EncodeData(data map[string]interface{}) ([]byte, error) {
	if data == nil {
		data = map[string]interface{}{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return raw, nil
}
