package core

import "strings"

// Report labels, in the order they appear in a generated metadata block.
const (
	LabelMachineName = "Machine Name"
	LabelPlatform    = "Platform"
	LabelHost        = "IP / Host"
	LabelDate        = "Date"
	LabelAuthor      = "Author"
	LabelDifficulty  = "Difficulty Level"
	LabelGoal        = "Goal"
)

// DefaultAuthor is used when the author prompt is left blank.
const DefaultAuthor = "R0b1"

// Metadata is the fixed set of fields written into a report.
// Empty values are valid and are written as-is.
type Metadata struct {
	MachineName string `json:"machine_name"`
	Platform    string `json:"platform"`
	Host        string `json:"host"`
	Date        string `json:"date"`
	Author      string `json:"author"`
	Difficulty  string `json:"difficulty"`
	Goal        string `json:"goal"`
}

// Field is a single label/value pair of a Metadata record.
type Field struct {
	Label string
	Value string
}

// Fields returns the record as ordered label/value pairs.
func (m Metadata) Fields() []Field {
	return []Field{
		{LabelMachineName, m.MachineName},
		{LabelPlatform, m.Platform},
		{LabelHost, m.Host},
		{LabelDate, m.Date},
		{LabelAuthor, m.Author},
		{LabelDifficulty, m.Difficulty},
		{LabelGoal, m.Goal},
	}
}

// Lookup returns the value stored under a report label.
// The second result is false for labels the record does not know.
func (m Metadata) Lookup(label string) (string, bool) {
	if p := m.field(label); p != nil {
		return *p, true
	}
	return "", false
}

// Set stores value under label. Unknown labels are ignored and reported as false.
func (m *Metadata) Set(label, value string) bool {
	p := m.field(label)
	if p == nil {
		return false
	}
	*p = value
	return true
}

func (m *Metadata) field(label string) *string {
	switch strings.TrimSpace(label) {
	case LabelMachineName:
		return &m.MachineName
	case LabelPlatform:
		return &m.Platform
	case LabelHost:
		return &m.Host
	case LabelDate:
		return &m.Date
	case LabelAuthor:
		return &m.Author
	case LabelDifficulty:
		return &m.Difficulty
	case LabelGoal:
		return &m.Goal
	}
	return nil
}

// Answers holds the free-text values collected from the user.
type Answers struct {
	Room       string
	Platform   string
	Host       string
	Author     string
	Difficulty string
	Goal       string
}

// Entry is a report discovered on disk.
type Entry struct {
	Path     string   `json:"path"`
	Metadata Metadata `json:"metadata"`
}
