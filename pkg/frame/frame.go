// Package frame holds the few table operations the analytical queries need on
// in-memory rows: top-N selection, group-by aggregation and wide-to-long reshaping.
package frame

import (
	"sort"
)

// Aggregation selects how grouped values are combined
type Aggregation int

const (
	Sum Aggregation = iota
	Mean
)

// Group is one aggregated bucket
type Group struct {
	Key   string
	Value float64
	Count int
}

// Long is one row of a wide table reshaped to (id, variable, value)
type Long struct {
	ID       string
	Variable string
	Value    float64
}

// TopN returns the n rows with the largest key, largest first.
// Ties keep their input order, as pandas nlargest does.
func TopN[T any](rows []T, n int, key func(T) float64) []T {
	if n <= 0 || len(rows) == 0 {
		return nil
	}
	out := make([]T, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) > key(out[j])
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// SortBy returns a copy of rows ordered ascending by key; ties keep input order
func SortBy[T any](rows []T, key func(T) float64) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) < key(out[j])
	})
	return out
}

// GroupBy aggregates value(row) per key(row). Groups come back sorted by key.
func GroupBy[T any](rows []T, key func(T) string, value func(T) float64, agg Aggregation) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, r := range rows {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Value += value(r)
		groups[i].Count++
	}

	if agg == Mean {
		for i := range groups {
			groups[i].Value /= float64(groups[i].Count)
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// Melt reshapes wide rows into long form, one output row per (row, variable)
// in variable-major order: all rows for the first variable, then the next.
func Melt[T any](rows []T, id func(T) string, variables []string, value func(T, string) float64) []Long {
	out := make([]Long, 0, len(rows)*len(variables))
	for _, v := range variables {
		for _, r := range rows {
			out = append(out, Long{ID: id(r), Variable: v, Value: value(r, v)})
		}
	}
	return out
}
