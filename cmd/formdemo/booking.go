package main

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrymomot/formcascade/pkg/formfield"
	"github.com/dmitrymomot/formcascade/pkg/validator"
)

//go:embed booking.yaml
var bookingManifest []byte

const dateLayout = time.DateOnly

// Date is a calendar day exchanged with the browser as "2006-01-02".
// The empty string is the zero date.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// Booking is the model edited by the demo form.
type Booking struct {
	Start    Date   `json:"Start"`
	End      Date   `json:"End"`
	Guests   int    `json:"Guests"`
	Children int    `json:"Children"`
	Email    string `json:"Email"`
}

func bookingStart(b Booking) time.Time { return b.Start.Time }
func bookingEnd(b Booking) time.Time   { return b.End.Time }
func bookingGuests(b Booking) int      { return b.Guests }
func bookingChildren(b Booking) int    { return b.Children }
func bookingEmail(b Booking) string    { return b.Email }

func bookingRules() *validator.RuleSet[Booking] {
	return validator.NewRuleSet[Booking]().
		For("Start",
			validator.Required(bookingStart),
			validator.FutureDate(bookingStart),
		).
		For("End",
			validator.Required(bookingEnd),
			validator.AfterOrEqualField("Start", bookingEnd, bookingStart),
		).
		For("Guests", validator.Between(bookingGuests, 1, 10)).
		For("Children",
			validator.Min(bookingChildren, 0),
			validator.LessThanOrEqualField("Guests", bookingChildren, bookingGuests),
			validator.MustExprCompare[Booking]("Guests", "Guests - Children >= 1", "at least one adult must travel"),
		).
		ForStop("Email",
			validator.NotEmpty(bookingEmail),
			validator.Email(bookingEmail),
		)
}

// loadManifest reads the manifest at path, or the embedded one when path is empty.
func loadManifest(path string) (*formfield.Manifest, error) {
	var r io.Reader = bytes.NewReader(bookingManifest)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return formfield.LoadManifest(r)
}
