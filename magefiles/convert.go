//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	siteCSV  = "data/artworks.csv"
	siteJSON = "data/artworks.json"
)

// Convert rebuilds data/artworks.json from data/artworks.csv with the CLI.
func Convert() error {
	mg.Deps(Build)
	if _, err := os.Stat(siteCSV); err != nil {
		return fmt.Errorf("missing %s: export the artworks sheet first", siteCSV)
	}
	return sh.RunV(binPath(), siteCSV, "--out", siteJSON)
}

// Series previews the site's series grouping of data/artworks.csv.
func Series() error {
	mg.Deps(Build)
	return sh.RunV(binPath(), "series", siteCSV)
}
