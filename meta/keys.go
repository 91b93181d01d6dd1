package meta

import (
	"cmp"
	"fmt"
	"slices"

	"seehuhn.de/go/vg/geom"
)

// Date is a calendar date and time of day, used for the creation/
// modification timestamp keys.
type Date struct {
	Year, Month, Day    int
	Hour, Min, Sec      int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		d.Year, d.Month, d.Day, d.Hour, d.Min, d.Sec)
}

func compareDate(a, b Date) int {
	if c := cmp.Compare(a.Year, b.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Month, b.Month); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Day, b.Day); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Hour, b.Hour); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Min, b.Min); c != 0 {
		return c
	}
	return cmp.Compare(a.Sec, b.Sec)
}

func compareStrings(a, b string) int {
	return cmp.Compare(a, b)
}

func compareStringSlice(a, b []string) int {
	return slices.Compare(a, b)
}

func compareV2(a, b geom.V2) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

func printStringSlice(s []string) string {
	return fmt.Sprintf("%v", []string(s))
}

// Standard pre-declared keys, as specified by the core document
// metadata model.
var (
	// Resolution is the preferred rendering resolution, in samples per
	// meter along each axis.
	Resolution = NewKey[geom.V2]("resolution", WithCompare(compareV2))

	// Title is the document title.
	Title = NewKey[string]("title", WithCompare(compareStrings))

	// Authors lists the document's authors.
	Authors = NewKey[[]string]("authors", WithCompare(compareStringSlice), WithPrinter(printStringSlice))

	// Creator is the name of the application that created the document.
	Creator = NewKey[string]("creator", WithCompare(compareStrings))

	// Keywords lists free-form document keywords.
	Keywords = NewKey[[]string]("keywords", WithCompare(compareStringSlice), WithPrinter(printStringSlice))

	// Subject is the document subject.
	Subject = NewKey[string]("subject", WithCompare(compareStrings))

	// Description is a free-form document description.
	Description = NewKey[string]("description", WithCompare(compareStrings))

	// CreationDate is the document creation timestamp.
	CreationDate = NewKey[Date]("creation_date", WithCompare(compareDate))

	// Producer is the name of the application that rendered the
	// document, distinct from Creator (the application that authored
	// the underlying image description).
	Producer = NewKey[string]("producer", WithCompare(compareStrings))

	// ModificationDate is the document's last-modified timestamp.
	ModificationDate = NewKey[Date]("modification_date", WithCompare(compareDate))
)
