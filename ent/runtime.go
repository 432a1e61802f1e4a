// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mkale/studyloop/ent/llmrequestevent"
	"github.com/mkale/studyloop/ent/reviewevent"
	"github.com/mkale/studyloop/ent/schema"
	"github.com/mkale/studyloop/ent/sessionevent"
	"github.com/mkale/studyloop/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescStudentID is the schema descriptor for student_id field.
	revieweventDescStudentID := revieweventFields[0].Descriptor()
	// reviewevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	reviewevent.StudentIDValidator = revieweventDescStudentID.Validators[0].(func(string) error)
	// revieweventDescItemID is the schema descriptor for item_id field.
	revieweventDescItemID := revieweventFields[1].Descriptor()
	// reviewevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewevent.ItemIDValidator = revieweventDescItemID.Validators[0].(func(string) error)
	// revieweventDescTopic is the schema descriptor for topic field.
	revieweventDescTopic := revieweventFields[2].Descriptor()
	// reviewevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	reviewevent.TopicValidator = revieweventDescTopic.Validators[0].(func(string) error)
	// revieweventDescOutcome is the schema descriptor for outcome field.
	revieweventDescOutcome := revieweventFields[3].Descriptor()
	// reviewevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	reviewevent.OutcomeValidator = revieweventDescOutcome.Validators[0].(func(string) error)
	// revieweventDescResponseTimeSecs is the schema descriptor for response_time_secs field.
	revieweventDescResponseTimeSecs := revieweventFields[4].Descriptor()
	// reviewevent.DefaultResponseTimeSecs holds the default value on creation for the response_time_secs field.
	reviewevent.DefaultResponseTimeSecs = revieweventDescResponseTimeSecs.Default.(float64)
	// revieweventDescMasteryScore is the schema descriptor for mastery_score field.
	revieweventDescMasteryScore := revieweventFields[8].Descriptor()
	// reviewevent.DefaultMasteryScore holds the default value on creation for the mastery_score field.
	reviewevent.DefaultMasteryScore = revieweventDescMasteryScore.Default.(float64)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescStudentID is the schema descriptor for student_id field.
	sessioneventDescStudentID := sessioneventFields[1].Descriptor()
	// sessionevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	sessionevent.StudentIDValidator = sessioneventDescStudentID.Validators[0].(func(string) error)
	// sessioneventDescTopic is the schema descriptor for topic field.
	sessioneventDescTopic := sessioneventFields[2].Descriptor()
	// sessionevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	sessionevent.TopicValidator = sessioneventDescTopic.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[3].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescHintRequests is the schema descriptor for hint_requests field.
	sessioneventDescHintRequests := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultHintRequests holds the default value on creation for the hint_requests field.
	sessionevent.DefaultHintRequests = sessioneventDescHintRequests.Default.(int)
	// sessioneventDescQuestionsAsked is the schema descriptor for questions_asked field.
	sessioneventDescQuestionsAsked := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultQuestionsAsked holds the default value on creation for the questions_asked field.
	sessionevent.DefaultQuestionsAsked = sessioneventDescQuestionsAsked.Default.(int)
	// sessioneventDescCopyPasteCount is the schema descriptor for copy_paste_count field.
	sessioneventDescCopyPasteCount := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultCopyPasteCount holds the default value on creation for the copy_paste_count field.
	sessionevent.DefaultCopyPasteCount = sessioneventDescCopyPasteCount.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescInterventionOffered is the schema descriptor for intervention_offered field.
	sessioneventDescInterventionOffered := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultInterventionOffered holds the default value on creation for the intervention_offered field.
	sessionevent.DefaultInterventionOffered = sessioneventDescInterventionOffered.Default.(bool)
	// sessioneventDescInterventionAccepted is the schema descriptor for intervention_accepted field.
	sessioneventDescInterventionAccepted := sessioneventFields[10].Descriptor()
	// sessionevent.DefaultInterventionAccepted holds the default value on creation for the intervention_accepted field.
	sessionevent.DefaultInterventionAccepted = sessioneventDescInterventionAccepted.Default.(bool)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
