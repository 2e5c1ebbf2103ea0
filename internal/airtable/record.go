package airtable

// Fields is the column map of a row as Airtable returns it. Empty cells are
// omitted by Airtable, so lookups must tolerate missing keys.
type Fields map[string]any

// String returns the named field as a string, or "" when it is missing or
// not a string.
func (f Fields) String(name string) string {
	s, _ := f[name].(string)
	return s
}

// Record is a single Airtable row.
type Record struct {
	ID          string `json:"id,omitempty"`
	CreatedTime string `json:"createdTime,omitempty"`
	Fields      Fields `json:"fields"`
}

type recordList struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}
