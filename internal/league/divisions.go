package league

import (
	"fmt"
	"slices"
	"strings"
)

// Division is one named group of teams, ordered by final rank.
type Division[T any] struct {
	Name  string `json:"name"`
	Teams []T    `json:"teams"`
}

// Grouping is the result of partitioning teams into divisions. When
// HasDivisions is false, Divisions is nil and callers show a flat list.
type Grouping[T any] struct {
	HasDivisions bool          `json:"has_divisions"`
	Divisions    []Division[T] `json:"divisions,omitempty"`
}

// DivisionName resolves a division number against the league's name map.
// A missing or blank name falls back to "Division N".
func DivisionName(names map[int]string, number int) string {
	if name := strings.TrimSpace(names[number]); name != "" {
		return name
	}
	return fmt.Sprintf("Division %d", number)
}

// NormalizeDivision maps the stored division string to nil when it carries no
// division (nil, blank, or "unknown" in any case) and trims it otherwise.
func NormalizeDivision(division *string) *string {
	if division == nil {
		return nil
	}
	name := strings.TrimSpace(*division)
	if name == "" || strings.EqualFold(name, "unknown") {
		return nil
	}
	return &name
}

// GroupByDivisionNumber buckets teams by their numeric division. Divisions are
// only used when names is non-empty and at least one team has a positive
// division number. Teams without a division are left out of the groups.
// Groups are ordered by division number.
func GroupByDivisionNumber[T any](teams []T, names map[int]string, division func(T) int, rank func(T) *int) Grouping[T] {
	if len(names) == 0 {
		return Grouping[T]{}
	}

	var numbers []int
	for _, t := range teams {
		if d := division(t); d > 0 && !slices.Contains(numbers, d) {
			numbers = append(numbers, d)
		}
	}
	if len(numbers) == 0 {
		return Grouping[T]{}
	}
	slices.Sort(numbers)

	var order []string
	buckets := make(map[string][]T)
	for _, n := range numbers {
		name := DivisionName(names, n)
		if !slices.Contains(order, name) {
			order = append(order, name)
		}
	}
	for _, t := range teams {
		if d := division(t); d > 0 {
			name := DivisionName(names, d)
			buckets[name] = append(buckets[name], t)
		}
	}

	return collect(order, buckets, rank)
}

// GroupByDivisionName buckets teams whose division has already been resolved
// to a string. Groups are ordered by first appearance in teams.
func GroupByDivisionName[T any](teams []T, division func(T) *string, rank func(T) *int) Grouping[T] {
	var order []string
	buckets := make(map[string][]T)
	for _, t := range teams {
		name := NormalizeDivision(division(t))
		if name == nil {
			continue
		}
		if _, ok := buckets[*name]; !ok {
			order = append(order, *name)
		}
		buckets[*name] = append(buckets[*name], t)
	}
	if len(order) == 0 {
		return Grouping[T]{}
	}

	return collect(order, buckets, rank)
}

func collect[T any](order []string, buckets map[string][]T, rank func(T) *int) Grouping[T] {
	divisions := make([]Division[T], 0, len(order))
	for _, name := range order {
		members := buckets[name]
		if len(members) == 0 {
			continue
		}
		SortByFinalRank(members, rank)
		divisions = append(divisions, Division[T]{Name: name, Teams: members})
	}
	if len(divisions) == 0 {
		return Grouping[T]{}
	}
	return Grouping[T]{HasDivisions: true, Divisions: divisions}
}
