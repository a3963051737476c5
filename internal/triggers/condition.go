// Package triggers evaluates trigger conditions against domain events and
// delivers notifications for the triggers that match.
//
// A condition is either a bare event type or an event type followed by a
// numeric comparison on one event field:
//
//	scan.completed
//	scan.completed when wcag_score < 50
//	scan.failed
//	outreach.sent when icp_score >= 80
package triggers

import (
	"fmt"
	"strconv"
	"strings"

	"wcagrep/pkg/domain"
	"wcagrep/pkg/serrors"
)

// Fields that conditions can compare.
const (
	FieldWCAGScore     = "wcag_score"
	FieldCriticalCount = "critical_count"
	FieldSeriousCount  = "serious_count"
	FieldICPScore      = "icp_score"
)

var triggerEvents = map[domain.EventType]bool{ //nolint: gochecknoglobals
	domain.EventScanCompleted:        true,
	domain.EventScanFailed:           true,
	domain.EventProspectUnsubscribed: true,
	domain.EventOutreachSent:         true,
}

var fields = map[string]bool{ //nolint: gochecknoglobals
	FieldWCAGScore:     true,
	FieldCriticalCount: true,
	FieldSeriousCount:  true,
	FieldICPScore:      true,
}

// Op is a comparison operator.
type Op string

const (
	OpLT Op = "<"
	OpLE Op = "<="
	OpGT Op = ">"
	OpGE Op = ">="
	OpEQ Op = "=="
	OpNE Op = "!="
)

// two character operators first so "<=" is not read as "<".
var ops = []Op{OpLE, OpGE, OpEQ, OpNE, OpLT, OpGT} //nolint: gochecknoglobals

// Condition is a parsed trigger condition.
type Condition struct {
	Event domain.EventType
	// Field is empty for conditions without a comparison.
	Field string
	Op    Op
	Value float64
}

// ParseCondition parses s. Keywords, event types and field names are case
// insensitive and any amount of whitespace separates the parts. Errors are
// BAD_REQUEST.
func ParseCondition(s string) (Condition, error) {
	norm := strings.ToLower(strings.Join(strings.Fields(s), " "))
	if norm == "" {
		return Condition{}, serrors.With(serrors.ErrBadRequest, "condition is required")
	}

	event, predicate, hasPredicate := strings.Cut(norm, " when ")
	if !hasPredicate && strings.HasSuffix(norm, " when") {
		return Condition{}, serrors.With(serrors.ErrBadRequest, "condition %q: missing comparison after when", s)
	}

	c := Condition{Event: domain.EventType(strings.TrimSpace(event))}
	if !triggerEvents[c.Event] {
		return Condition{}, serrors.With(serrors.ErrBadRequest, "condition %q: unknown event %q", s, c.Event)
	}
	if !hasPredicate {
		return c, nil
	}

	for _, op := range ops {
		field, value, found := strings.Cut(predicate, string(op))
		if !found {
			continue
		}

		c.Field = strings.TrimSpace(field)
		c.Op = op
		if !fields[c.Field] {
			return Condition{}, serrors.With(serrors.ErrBadRequest, "condition %q: unknown field %q", s, c.Field)
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return Condition{}, serrors.With(serrors.ErrBadRequest, "condition %q: invalid number %q", s, strings.TrimSpace(value))
		}
		c.Value = v

		return c, nil
	}

	return Condition{}, serrors.With(serrors.ErrBadRequest, "condition %q: missing comparison operator", s)
}

// Match reports whether e satisfies the condition. A comparison on a field the
// event does not carry never matches.
func (c Condition) Match(e domain.Event) bool {
	if e.Type != c.Event {
		return false
	}
	if c.Field == "" {
		return true
	}

	v, ok := e.Number(c.Field)
	if !ok {
		return false
	}

	switch c.Op {
	case OpLT:
		return v < c.Value
	case OpLE:
		return v <= c.Value
	case OpGT:
		return v > c.Value
	case OpGE:
		return v >= c.Value
	case OpEQ:
		return v == c.Value
	case OpNE:
		return v != c.Value
	default:
		return false
	}
}

func (c Condition) String() string {
	if c.Field == "" {
		return string(c.Event)
	}

	return fmt.Sprintf("%s when %s %s %s", c.Event, c.Field, c.Op, strconv.FormatFloat(c.Value, 'f', -1, 64))
}

// ValidateTrigger checks the static fields and the condition of t.
func ValidateTrigger(t domain.Trigger) error {
	if err := t.Validate(); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "Invalid trigger data")
	}
	if _, err := ParseCondition(t.Condition); err != nil {
		return err
	}

	return nil
}
