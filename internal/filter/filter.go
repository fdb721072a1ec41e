// Package filter turns the query parameters of a game listing request into a
// composed GORM scope. Supported fields are declared in an explicit table;
// anything else is rejected before a single clause is built.
package filter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/IoneseiGabriel/DavaQuiz/internal/apperr"
	"github.com/IoneseiGabriel/DavaQuiz/internal/models"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type matchKind int

const (
	matchExactStatus matchKind = iota
	matchSubstring
	matchCalendarDay
)

type fieldRule struct {
	kind   matchKind
	column string
}

// gameFields is the whitelist of filterable game fields, keyed by the wire
// name used in query parameters.
var gameFields = map[string]fieldRule{
	"status":    {kind: matchExactStatus, column: "status"},
	"title":     {kind: matchSubstring, column: "title"},
	"createdAt": {kind: matchCalendarDay, column: "created_at"},
	"updatedAt": {kind: matchCalendarDay, column: "updated_at"},
}

// paginationParams arrive in the same query-parameter map as the business
// filters but are not filters themselves.
var paginationParams = []string{"page", "size"}

type condition struct {
	query string
	args  []any
}

// GameScope validates the given field=value pairs against the whitelist and
// builds a scope equivalent to the AND of one predicate per entry. A nil
// scope is returned when no business filters remain after stripping
// pagination parameters.
func GameScope(filters map[string]string) (func(*gorm.DB) *gorm.DB, error) {
	remaining := make(map[string]string, len(filters))
	for key, value := range filters {
		remaining[key] = value
	}
	for _, param := range paginationParams {
		delete(remaining, param)
	}

	if len(remaining) == 0 {
		return nil, nil
	}

	// Validate every key up front so an unknown field never leaves a
	// partially applied filter behind.
	for key := range remaining {
		if _, ok := gameFields[key]; !ok {
			return nil, apperr.Validationf("no field was found with the specified name '%s'", key)
		}
	}

	conditions := make([]condition, 0, len(remaining))
	for key, value := range remaining {
		cond, err := buildCondition(gameFields[key], value)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, cond)
	}

	return func(db *gorm.DB) *gorm.DB {
		for _, cond := range conditions {
			db = db.Where(cond.query, cond.args...)
		}
		return db
	}, nil
}

// FilteredBy reports the business filter keys present in the request, sorted
// for stable responses.
func FilteredBy(filters map[string]string) []string {
	keys := make([]string, 0, len(filters))
	for key := range filters {
		if _, ok := gameFields[key]; ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func buildCondition(rule fieldRule, value string) (condition, error) {
	switch rule.kind {
	case matchExactStatus:
		status, ok := models.ParseGameStatus(value)
		if !ok {
			return condition{}, apperr.Validationf("invalid game status '%s'", value)
		}
		return condition{query: rule.column + " = ?", args: []any{status}}, nil

	case matchSubstring:
		pattern := "%" + strings.ToLower(value) + "%"
		return condition{query: "LOWER(" + rule.column + ") LIKE ?", args: []any{pattern}}, nil

	case matchCalendarDay:
		day, err := time.ParseInLocation(dateLayout, value, time.UTC)
		if err != nil {
			return condition{}, apperr.Validationf("invalid date '%s', expected format %s", value, dateLayout)
		}
		start := day
		end := day.AddDate(0, 0, 1)
		return condition{
			query: fmt.Sprintf("%s >= ? AND %s < ?", rule.column, rule.column),
			args:  []any{start, end},
		}, nil

	default:
		return condition{}, apperr.Validationf("unsupported filter rule")
	}
}
