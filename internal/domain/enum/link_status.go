package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// LinkStatus is the tier kind of a trading network link.
type LinkStatus string

const (
	LinkStatusFactory       LinkStatus = "factory"
	LinkStatusRetailNetwork LinkStatus = "retail network"
	LinkStatusEntrepreneur  LinkStatus = "entrepreneur"
)

var linkStatusDisplay = map[LinkStatus]string{
	LinkStatusFactory:       "Завод",
	LinkStatusRetailNetwork: "Розничная сеть",
	LinkStatusEntrepreneur:  "Индивидуальный предприниматель",
}

// LinkStatuses lists the statuses in declaration order.
func LinkStatuses() []LinkStatus {
	return []LinkStatus{LinkStatusFactory, LinkStatusRetailNetwork, LinkStatusEntrepreneur}
}

// InvalidChoiceError is returned when a value is not one of the known statuses.
type InvalidChoiceError struct {
	Value string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("\"%s\" is not a valid choice.", e.Value)
}

// ParseLinkStatus accepts either the stored code or the display name.
func ParseLinkStatus(s string) (LinkStatus, error) {
	if st := LinkStatus(s); st.Valid() {
		return st, nil
	}
	for st, display := range linkStatusDisplay {
		if display == s {
			return st, nil
		}
	}
	return "", &InvalidChoiceError{Value: s}
}

func (s LinkStatus) Valid() bool {
	_, ok := linkStatusDisplay[s]
	return ok
}

func (s LinkStatus) IsFactory() bool {
	return s == LinkStatusFactory
}

// Display returns the human readable (Russian) name.
func (s LinkStatus) Display() string {
	if d, ok := linkStatusDisplay[s]; ok {
		return d
	}
	return string(s)
}

func (s LinkStatus) String() string {
	return string(s)
}

func (s LinkStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *LinkStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseLinkStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s LinkStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, &InvalidChoiceError{Value: string(s)}
	}
	return string(s), nil
}

func (s *LinkStatus) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into LinkStatus", value)
	}
	parsed, err := ParseLinkStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
