package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	assessmentTable = "assessment_results"
	symptomTable    = "symptom_runs"
)

var (
	// AssessmentResultsColumns holds the columns for the "assessment_results" table.
	AssessmentResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "session_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "anxiety", Type: field.TypeInt},
		{Name: "depression", Type: field.TypeInt},
		{Name: "stress", Type: field.TypeInt},
		{Name: "sleep", Type: field.TypeInt},
		{Name: "social", Type: field.TypeInt},
		{Name: "overall", Type: field.TypeInt},
		{Name: "crisis_detected", Type: field.TypeBool, Default: false},
		{Name: "answers", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeInt64},
	}
	// AssessmentResultsTable holds the schema information for the "assessment_results" table.
	AssessmentResultsTable = &schema.Table{
		Name:       assessmentTable,
		Columns:    AssessmentResultsColumns,
		PrimaryKey: []*schema.Column{AssessmentResultsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "assessmentresult_timestamp", Columns: []*schema.Column{AssessmentResultsColumns[2]}},
			{Name: "assessmentresult_session_id", Columns: []*schema.Column{AssessmentResultsColumns[3]}},
		},
	}

	// SymptomRunsColumns holds the columns for the "symptom_runs" table.
	SymptomRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "language", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "answers", Type: field.TypeString},
		{Name: "results", Type: field.TypeString},
		{Name: "all_unlikely", Type: field.TypeBool, Default: false},
	}
	// SymptomRunsTable holds the schema information for the "symptom_runs" table.
	SymptomRunsTable = &schema.Table{
		Name:       symptomTable,
		Columns:    SymptomRunsColumns,
		PrimaryKey: []*schema.Column{SymptomRunsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "symptomrun_timestamp", Columns: []*schema.Column{SymptomRunsColumns[2]}},
			{Name: "symptomrun_category", Columns: []*schema.Column{SymptomRunsColumns[5]}},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentResultsTable,
		SymptomRunsTable,
	}
)
