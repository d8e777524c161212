package entities

import (
	"reflect"
	"strings"
)

// QueryConfig describes one analytical query: its SQL, the columns it must
// return and the chart files rendered from it
type QueryConfig struct {
	Key     string
	Name    string
	SQL     string
	Columns []string
	Charts  []string
}

// ColumnsOf returns the db tags of a row struct in field order
func ColumnsOf(row interface{}) []string {
	t := reflect.TypeOf(row)
	for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var cols []string
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		cols = append(cols, strings.Split(tag, ",")[0])
	}
	return cols
}

// QuoteList renders values as a SQL IN list body: 'a','b'.
// Values are fixed vocabulary constants, never user input.
func QuoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	return strings.Join(quoted, ",")
}
