// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldHintRequests holds the string denoting the hint_requests field in the database.
	FieldHintRequests = "hint_requests"
	// FieldQuestionsAsked holds the string denoting the questions_asked field in the database.
	FieldQuestionsAsked = "questions_asked"
	// FieldCopyPasteCount holds the string denoting the copy_paste_count field in the database.
	FieldCopyPasteCount = "copy_paste_count"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// FieldSignals holds the string denoting the signals field in the database.
	FieldSignals = "signals"
	// FieldInterventionOffered holds the string denoting the intervention_offered field in the database.
	FieldInterventionOffered = "intervention_offered"
	// FieldInterventionAccepted holds the string denoting the intervention_accepted field in the database.
	FieldInterventionAccepted = "intervention_accepted"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldStudentID,
	FieldTopic,
	FieldAction,
	FieldHintRequests,
	FieldQuestionsAsked,
	FieldCopyPasteCount,
	FieldDurationSecs,
	FieldSignals,
	FieldInterventionOffered,
	FieldInterventionAccepted,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultHintRequests holds the default value on creation for the "hint_requests" field.
	DefaultHintRequests int
	// DefaultQuestionsAsked holds the default value on creation for the "questions_asked" field.
	DefaultQuestionsAsked int
	// DefaultCopyPasteCount holds the default value on creation for the "copy_paste_count" field.
	DefaultCopyPasteCount int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
	// DefaultInterventionOffered holds the default value on creation for the "intervention_offered" field.
	DefaultInterventionOffered bool
	// DefaultInterventionAccepted holds the default value on creation for the "intervention_accepted" field.
	DefaultInterventionAccepted bool
)

// OrderOption defines the ordering options for the SessionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByHintRequests orders the results by the hint_requests field.
func ByHintRequests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintRequests, opts...).ToFunc()
}

// ByQuestionsAsked orders the results by the questions_asked field.
func ByQuestionsAsked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsAsked, opts...).ToFunc()
}

// ByCopyPasteCount orders the results by the copy_paste_count field.
func ByCopyPasteCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCopyPasteCount, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}

// ByInterventionOffered orders the results by the intervention_offered field.
func ByInterventionOffered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterventionOffered, opts...).ToFunc()
}

// ByInterventionAccepted orders the results by the intervention_accepted field.
func ByInterventionAccepted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterventionAccepted, opts...).ToFunc()
}
