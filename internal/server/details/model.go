// Package details stores the single company-details record each user owns.
package details

// Details table columns.
const (
	FieldEmail   = "Email"
	FieldCompany = "Company"
	FieldPhone   = "Phone"
	FieldNotes   = "Notes"
)

// Details is the editable content of a record. Email is the lookup key.
type Details struct {
	Email   string
	Company string
	Phone   string
	Notes   string
}

// Record is a stored Details row.
type Record struct {
	ID          string
	CreatedTime string
	Details
}

// Outcome tells whether Upsert created or updated a record.
type Outcome int

const (
	Created Outcome = iota + 1
	Updated
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Updated:
		return "updated"
	default:
		return "unknown"
	}
}
