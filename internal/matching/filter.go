// Package matching selects archived games by criteria on their record fields.
package matching

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/archive"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"golang.org/x/exp/constraints"
)

// Operator represents comparison operators for field matching.
type Operator int

const (
	OpNone Operator = iota
	OpEqual
	OpNotEqual
	OpLessThan
	OpLessOrEqual
	OpGreaterThan
	OpGreaterOrEqual
	OpContains // substring match
	OpRegex    // regex match
)

// Fields that criteria can name.
const (
	FieldID          = "id"
	FieldResult      = "result"
	FieldTermination = "termination"
	FieldWinner      = "winner"
	FieldPlies       = "plies"
	FieldDate        = "date"
	FieldMoves       = "moves"
)

var knownFields = map[string]bool{
	FieldID: true, FieldResult: true, FieldTermination: true, FieldWinner: true,
	FieldPlies: true, FieldDate: true, FieldMoves: true,
}

// Criterion represents a single matching criterion.
type Criterion struct {
	Field      string
	Value      string
	Operator   Operator
	Regex      *regexp.Regexp // compiled regex for OpRegex
	LowerValue string         // pre-computed lowercase for OpContains
}

// RecordFilter selects archive records.
type RecordFilter struct {
	criteria []*Criterion
	matchAll bool // true = AND all criteria, false = OR
}

// NewRecordFilter creates a filter that requires every criterion to match.
func NewRecordFilter() *RecordFilter {
	return &RecordFilter{
		matchAll: true,
	}
}

// SetMatchAll sets whether all criteria must match (AND) or any (OR).
func (f *RecordFilter) SetMatchAll(all bool) {
	f.matchAll = all
}

// AddCriterion adds a matching criterion.
func (f *RecordFilter) AddCriterion(field, value string, op Operator) error {
	field = strings.ToLower(field)
	if !knownFields[field] {
		return fmt.Errorf("unknown field %q: %w", field, errors.ErrInvalidConfig)
	}
	c := &Criterion{
		Field:    field,
		Value:    value,
		Operator: op,
	}

	if op == OpRegex {
		re, err := regexp.Compile(value)
		if err != nil {
			return fmt.Errorf("field %s: %v: %w", field, err, errors.ErrInvalidConfig)
		}
		c.Regex = re
	}

	if op == OpContains {
		c.LowerValue = strings.ToLower(value)
	}

	f.criteria = append(f.criteria, c)
	return nil
}

// ParseCriterion parses a criterion string like `plies >= 40` or
// `termination ~ "mate|stalemate"`. The operators are = != <> < <= > >= ~
// (regex) and : (substring).
func (f *RecordFilter) ParseCriterion(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	fieldEnd := strings.IndexAny(line, " \t<>=!~:")
	if fieldEnd <= 0 {
		return fmt.Errorf("criterion %q has no operator: %w", line, errors.ErrInvalidConfig)
	}

	field := strings.TrimSpace(line[:fieldEnd])
	rest := strings.TrimSpace(line[fieldEnd:])

	op := OpEqual
	valueStart := 0

	switch {
	case strings.HasPrefix(rest, "<="):
		op, valueStart = OpLessOrEqual, 2
	case strings.HasPrefix(rest, ">="):
		op, valueStart = OpGreaterOrEqual, 2
	case strings.HasPrefix(rest, "<>"), strings.HasPrefix(rest, "!="):
		op, valueStart = OpNotEqual, 2
	case strings.HasPrefix(rest, "<"):
		op, valueStart = OpLessThan, 1
	case strings.HasPrefix(rest, ">"):
		op, valueStart = OpGreaterThan, 1
	case strings.HasPrefix(rest, "="):
		op, valueStart = OpEqual, 1
	case strings.HasPrefix(rest, "~"):
		op, valueStart = OpRegex, 1
	case strings.HasPrefix(rest, ":"):
		op, valueStart = OpContains, 1
	}

	value := strings.TrimSpace(rest[valueStart:])

	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}

	return f.AddCriterion(field, value, op)
}

// Match checks if a record matches the criteria.
func (f *RecordFilter) Match(rec *archive.Record) bool {
	if len(f.criteria) == 0 {
		return true // no criteria = match all
	}

	for _, c := range f.criteria {
		matches := matchValue(fieldValue(rec, c.Field), c)

		if f.matchAll {
			if !matches {
				return false // AND: any failure = no match
			}
		} else if matches {
			return true // OR: any success = match
		}
	}

	return f.matchAll // AND: all passed, OR: none passed
}

// Filter returns the records that match, in order.
func (f *RecordFilter) Filter(records []*archive.Record) []*archive.Record {
	var out []*archive.Record
	for _, rec := range records {
		if f.Match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// CriteriaCount returns the number of criteria.
func (f *RecordFilter) CriteriaCount() int {
	return len(f.criteria)
}

// fieldValue renders a record field as text.
func fieldValue(rec *archive.Record, field string) string {
	switch field {
	case FieldID:
		return strconv.FormatUint(rec.ID, 10)
	case FieldResult:
		return rec.Result
	case FieldTermination:
		return rec.Termination
	case FieldWinner:
		return rec.Winner
	case FieldPlies:
		return strconv.Itoa(rec.Plies)
	case FieldDate:
		return rec.Ended.Format("2006.01.02")
	case FieldMoves:
		return strings.Join(rec.Moves, " ")
	}
	return ""
}

// matchValue compares a field value against a criterion.
func matchValue(value string, c *Criterion) bool {
	switch c.Operator {
	case OpNone, OpEqual:
		return strings.EqualFold(value, c.Value)

	case OpNotEqual:
		return !strings.EqualFold(value, c.Value)

	case OpContains:
		return strings.Contains(strings.ToLower(value), c.LowerValue)

	case OpRegex:
		if c.Regex == nil {
			return false
		}
		return c.Regex.MatchString(value)

	case OpLessThan, OpLessOrEqual, OpGreaterThan, OpGreaterOrEqual:
		return compareValues(value, c.Value, c.Operator)
	}

	return false
}

// compareValues compares values using relational operators.
// Handles dates (YYYY.MM.DD) and numeric values.
func compareValues(value, criterionValue string, op Operator) bool {
	valueDate := parseDate(value)
	criterionDate := parseDate(criterionValue)

	if valueDate > 0 && criterionDate > 0 {
		return compareOrdered(valueDate, criterionDate, op)
	}

	valueNum, err1 := strconv.ParseFloat(value, 64)
	criterionNum, err2 := strconv.ParseFloat(criterionValue, 64)

	if err1 == nil && err2 == nil {
		return compareOrdered(valueNum, criterionNum, op)
	}

	return compareOrdered(strings.ToLower(value), strings.ToLower(criterionValue), op)
}

func compareOrdered[T constraints.Ordered](a, b T, op Operator) bool {
	switch op {
	case OpLessThan:
		return a < b
	case OpLessOrEqual:
		return a <= b
	case OpGreaterThan:
		return a > b
	case OpGreaterOrEqual:
		return a >= b
	}
	return false
}

// parseDate parses a date in YYYY.MM.DD format and returns encoded value.
// Returns 0 unless the value has at least a year and a month.
func parseDate(s string) int {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return 0
	}

	year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || year < 100 || year > 3000 {
		return 0
	}

	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || month < 1 || month > 12 {
		return 0
	}

	day := 1
	if len(parts) >= 3 {
		d, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err == nil && d >= 1 && d <= 31 {
			day = d
		}
	}

	return year*10000 + month*100 + day
}
