// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package series groups converted artwork records into the series the site
// displays: one entry per distinct series name, ordered by the series
// order column, with works ordered by sub_order then title.
package series

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/gosimple/slug"

	"github.com/pdiddy/artworks/pkg/types"
)

// Column names read from each record.
const (
	colSeries      = "series"
	colSeriesDesc  = "series_description"
	colOrder       = "order"
	colSubOrder    = "sub_order"
	colTitle       = "title"
	colSubcats     = "subcategories"
	colThumbFile   = "thumb_file"
	colImageFile   = "image_file"
	untitledSeries = "Untitled Series"
)

// DefaultOrder sorts series or works with a missing or non-numeric order
// after everything that has one.
const DefaultOrder = 9999

// Work is one artwork within a series.
type Work struct {
	Title         string       `json:"title" yaml:"title"`
	SubOrder      float64      `json:"sub_order" yaml:"sub_order"`
	Subcategories []string     `json:"subcategories,omitempty" yaml:"subcategories,omitempty"`
	Record        types.Record `json:"record" yaml:"record"`
}

// Series is one group of works sharing a series name.
type Series struct {
	Name          string   `json:"name" yaml:"name"`
	Slug          string   `json:"slug" yaml:"slug"`
	Order         float64  `json:"order" yaml:"order"`
	Cover         string   `json:"cover,omitempty" yaml:"cover,omitempty"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	Subcategories []string `json:"subcategories" yaml:"subcategories"`
	Works         []Work   `json:"works" yaml:"works"`
}

// Build groups ds by series. A blank series name maps to "Untitled Series".
// Order and description come from the first record of each series; the
// cover is the first non-empty thumb_file or image_file.
func Build(ds types.Dataset) []Series {
	var out []Series
	index := make(map[string]int)

	for _, rec := range ds {
		name := rec.Value(colSeries)
		if name == "" {
			name = untitledSeries
		}

		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, Series{
				Name:        name,
				Slug:        Slug(name),
				Order:       parseOrder(rec.Value(colOrder)),
				Description: rec.Value(colSeriesDesc),
			})
		}
		s := &out[i]

		if s.Cover == "" {
			s.Cover = cover(rec)
		}
		subs := SplitSubcategories(rec.Value(colSubcats))
		s.Subcategories = mergeSorted(s.Subcategories, subs)
		s.Works = append(s.Works, Work{
			Title:         rec.Value(colTitle),
			SubOrder:      parseOrder(rec.Value(colSubOrder)),
			Subcategories: subs,
			Record:        rec,
		})
	}

	for i := range out {
		slices.SortStableFunc(out[i].Works, func(a, b Work) int {
			if c := cmp.Compare(a.SubOrder, b.SubOrder); c != 0 {
				return c
			}
			return strings.Compare(a.Title, b.Title)
		})
		if out[i].Subcategories == nil {
			out[i].Subcategories = []string{}
		}
	}
	slices.SortStableFunc(out, func(a, b Series) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return out
}

// Filter keeps the series with at least one work tagged with any of subcats.
// An empty subcats keeps every series.
func Filter(all []Series, subcats []string) []Series {
	if len(subcats) == 0 {
		return all
	}
	var out []Series
	for _, s := range all {
		if matches(s, subcats) {
			out = append(out, s)
		}
	}
	return out
}

func matches(s Series, subcats []string) bool {
	for _, w := range s.Works {
		for _, want := range subcats {
			if slices.Contains(w.Subcategories, want) {
				return true
			}
		}
	}
	return false
}

// Subcategories returns the sorted union of subcategories across all series.
func Subcategories(all []Series) []string {
	var out []string
	for _, s := range all {
		out = mergeSorted(out, s.Subcategories)
	}
	return out
}

// Slug returns the anchor slug the site derives from a series name: lower
// case, every run of characters outside [a-z0-9] collapsed to one hyphen,
// outer hyphens trimmed. Non-ASCII letters are dropped rather than
// transliterated, so "Café Nights" becomes "caf-nights".
func Slug(name string) string {
	ascii := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '-'
	}, strings.ToLower(strings.TrimSpace(name)))
	return slug.Make(ascii)
}

// SplitSubcategories splits a comma-separated subcategories cell into
// trimmed, non-empty entries in cell order.
func SplitSubcategories(cell string) []string {
	var out []string
	for _, part := range strings.Split(cell, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseOrder reads a numeric order cell. Blank or non-numeric values yield
// DefaultOrder.
func parseOrder(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) {
		return DefaultOrder
	}
	return v
}

func cover(rec types.Record) string {
	if v := rec.Value(colThumbFile); v != "" {
		return v
	}
	return rec.Value(colImageFile)
}

// mergeSorted adds the entries of add to set, keeping it sorted and unique.
func mergeSorted(set, add []string) []string {
	for _, v := range add {
		i, found := slices.BinarySearch(set, v)
		if !found {
			set = slices.Insert(set, i, v)
		}
	}
	return set
}
