package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JSONBDocument stores an arbitrary JSON payload in a PostgreSQL JSONB column
type JSONBDocument json.RawMessage

// Value implements driver.Valuer interface
func (d JSONBDocument) Value() (driver.Value, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return []byte(d), nil
}

// Scan implements sql.Scanner interface
func (d *JSONBDocument) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*d = append((*d)[:0], v...)
	case string:
		*d = JSONBDocument(v)
	default:
		return fmt.Errorf("unsupported JSONB source type %T", value)
	}
	return nil
}

// MarshalJSON passes the stored document through untouched
func (d JSONBDocument) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return []byte(d), nil
}

// UnmarshalJSON stores the raw document
func (d *JSONBDocument) UnmarshalJSON(data []byte) error {
	*d = append((*d)[:0], data...)
	return nil
}

// AnalysisSession is one saved analysis run: the measurements the hobbyist
// entered plus the computed wiring result, kept so a half-finished workbench
// session can be resumed later.
type AnalysisSession struct {
	ID        uuid.UUID     `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Input     JSONBDocument `json:"input" db:"input"`
	Result    JSONBDocument `json:"result" db:"result"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

// NewAnalysisSession creates a session snapshot from the given input and
// result payloads
func NewAnalysisSession(name string, input, result interface{}) (*AnalysisSession, error) {
	inputDoc, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("marshal session input: %w", err)
	}
	resultDoc, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal session result: %w", err)
	}
	now := time.Now()
	return &AnalysisSession{
		ID:        uuid.New(),
		Name:      name,
		Input:     inputDoc,
		Result:    resultDoc,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
