package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice is stored as a JSON array in a CLOB column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	raw, err := jsonBytes(value)
	if err != nil {
		return fmt.Errorf("StringSlice Scan: %w", err)
	}
	if len(raw) == 0 || string(raw) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(raw, s)
}

// ScoreMap is a category -> score map stored as a JSON object.
type ScoreMap map[string]float64

// Value implements the driver.Valuer interface
func (m ScoreMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	jsonData, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (m *ScoreMap) Scan(value interface{}) error {
	raw, err := jsonBytes(value)
	if err != nil {
		return fmt.Errorf("ScoreMap Scan: %w", err)
	}
	if len(raw) == 0 || string(raw) == "null" {
		*m = ScoreMap{}
		return nil
	}
	return json.Unmarshal(raw, m)
}

func jsonBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("unsupported type " + fmt.Sprintf("%T", value))
	}
}

// Profile maps the culture_profiles table.
type Profile struct {
	ID               string      `db:"id"`
	RespondentID     string      `db:"respondent_id"`
	CategoryScores   ScoreMap    `db:"category_scores"`
	OverallScore     float64     `db:"overall_score"`
	CulturalStrength string      `db:"cultural_strength"`
	ProfileType      string      `db:"profile_type"`
	Recommendations  StringSlice `db:"recommendations"`
	CreatedAt        time.Time   `db:"created_at"`
	UpdatedAt        time.Time   `db:"updated_at"`
}
