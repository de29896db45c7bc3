package debugui

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/plus3/actorgame/actor"
	"github.com/plus3/actorgame/math2d"
)

type FieldInfo struct {
	Name     string
	Type     reflect.Type
	Index    int
	Exported bool
}

// FieldValue is a formatted field of a component
type FieldValue struct {
	Name  string
	Value string
}

type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

// GetFields lists the struct fields of t, skipping embedded ones
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if field.Anonymous {
				continue
			}
			fields = append(fields, FieldInfo{
				Name:     field.Name,
				Type:     field.Type,
				Index:    i,
				Exported: field.IsExported(),
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

// Describe formats every field of c. Unexported fields are read without being exposed.
func (rc *ReflectionCache) Describe(c actor.Component) []FieldValue {
	val := reflect.ValueOf(c)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	fields := rc.GetFields(val.Type())
	out := make([]FieldValue, 0, len(fields))
	for _, field := range fields {
		out = append(out, FieldValue{
			Name:  field.Name,
			Value: formatValue(val.Field(field.Index)),
		})
	}
	return out
}

var vector2Type = reflect.TypeFor[math2d.Vector2]()

func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', 3, 64)
	case reflect.String:
		return strconv.Quote(v.String())
	case reflect.Ptr:
		if v.IsNil() {
			return "nil"
		}
		return v.Type().String()
	case reflect.Interface:
		if v.IsNil() {
			return "nil"
		}
		return v.Elem().Type().String()
	case reflect.Struct:
		if v.Type() == vector2Type {
			return fmt.Sprintf("(%.2f, %.2f)", v.Field(0).Float(), v.Field(1).Float())
		}
		return v.Type().String()
	case reflect.Slice, reflect.Map:
		return fmt.Sprintf("[%d items]", v.Len())
	default:
		return v.Type().String()
	}
}

var globalReflectionCache = NewReflectionCache()
