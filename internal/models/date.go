package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout календарная дата без времени.
const DateLayout = "2006-01-02"

// ParseDate принимает RFC 3339 или календарную дату. Календарная дата трактуется как полночь UTC.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("некорректная дата %q: ожидается RFC 3339 или %s", value, DateLayout)
	}
	return t, nil
}

// decodeDate разбирает JSON-строку с датой; null даёт nil.
func decodeDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := ParseDate(*raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UnmarshalJSON принимает due_date в обоих форматах ParseDate.
func (m *Milestone) UnmarshalJSON(data []byte) error {
	var aux struct {
		Name      string  `json:"name"`
		Completed bool    `json:"completed"`
		DueDate   *string `json:"due_date"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	due, err := decodeDate(aux.DueDate)
	if err != nil {
		return err
	}
	*m = Milestone{Name: aux.Name, Completed: aux.Completed, DueDate: due}
	return nil
}

// UnmarshalJSON принимает date в обоих форматах ParseDate.
func (in *CreateDailyChangeLogInput) UnmarshalJSON(data []byte) error {
	var aux struct {
		Date    *string       `json:"date"`
		Changes []ChangeEntry `json:"changes"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	date, err := decodeDate(aux.Date)
	if err != nil {
		return err
	}
	*in = CreateDailyChangeLogInput{Date: date, Changes: aux.Changes}
	return nil
}
