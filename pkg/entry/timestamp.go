package entry

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the wire format for entry timestamps, second resolution.
// It is shared with the persisted document and must not change.
const Layout = "2006_01_02_15_04_05"

// DayLayout is the leading portion of Layout used for day-prefix searches.
const DayLayout = "2006_01_02"

func ParseTime(v string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, v, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

type Timestamp struct {
	time.Time
}

// Now stamps the current local time at second resolution.
func Now() Timestamp {
	return Timestamp{Time: time.Now().Truncate(time.Second)}
}

func (t Timestamp) SameDay(then time.Time) bool {
	if t.Local().Day() == then.Local().Day() &&
		t.Local().Month() == then.Local().Month() &&
		t.Local().Year() == then.Local().Year() {
		return true
	}
	return false
}

// DayPrefix returns the YYYY_MM_DD portion of the timestamp.
func (t Timestamp) DayPrefix() string {
	return t.Local().Format(DayLayout)
}

// Clock returns the HH:MM form used by the session pane.
func (t Timestamp) Clock() string {
	return t.Local().Format("15:04")
}

func (t *Timestamp) MarshalJSON() ([]byte, error) {
	if t == nil || t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.Local().Format(Layout)
}
