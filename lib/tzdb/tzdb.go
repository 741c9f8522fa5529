// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

// Package tzdb resolves the active timezone and lists the zone
// database.
//
// The active zone is derived from the local-time symlink (conventionally
// /etc/localtime) whose target lives under the zone database root
// (conventionally /usr/share/zoneinfo). A host with no link is defined
// to be on UTC. An explicit override zone short-circuits link
// resolution; it exists for tests and for configurations that pin the
// zone independently of the symlink.
package tzdb

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sundial-foundation/sundial/lib/ipc"
)

// indexFile is the zone database index: whitespace-delimited columns,
// third column is the zone identifier, '#' starts a comment line.
const indexFile = "zone.tab"

// Resolver answers timezone queries against one zone database root and
// one local-time link path.
type Resolver struct {
	root     string
	linkPath string
	override string
}

// NewResolver returns a Resolver for the zone database at root and the
// local-time link at linkPath. A non-empty override pins Current to
// that zone without consulting the link.
func NewResolver(root, linkPath, override string) *Resolver {
	return &Resolver{root: root, linkPath: linkPath, override: override}
}

// Current returns the active zone identifier. The override wins when
// configured; otherwise the local-time link is resolved to its target
// under the database root. An absent link means "UTC", never an error.
func (r *Resolver) Current() (string, error) {
	if r.override != "" {
		return r.override, nil
	}

	if _, err := os.Lstat(r.linkPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "UTC", nil
		}
		return "", ipc.Internalf("unable to determine local timezone: %v", err)
	}

	// The link may be the head of a chain (localtime pointing at a
	// distro-managed link pointing at the zone file); canonicalize the
	// whole chain before comparing against the database root.
	target, err := filepath.EvalSymlinks(r.linkPath)
	if err != nil {
		return "", ipc.Internalf("unable to determine local timezone: %v", err)
	}

	// Canonicalize the root too so both sides of the comparison are
	// free of symlinked path components.
	root := r.root
	if resolved, err := filepath.EvalSymlinks(r.root); err == nil {
		root = resolved
	}

	zone, err := filepath.Rel(root, target)
	if err != nil || zone == "." || strings.HasPrefix(zone, "..") {
		return "", ipc.Internalf("unable to determine local timezone: %s points outside %s", r.linkPath, r.root)
	}
	return zone, nil
}

// List returns every zone identifier in the database index, in file
// order. Comment lines and lines without a third column are skipped.
// A missing index file is reported as not-found.
func (r *Resolver) List() ([]string, error) {
	indexPath := filepath.Join(r.root, indexFile)
	file, err := os.Open(indexPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ipc.NotFoundf("zone database index %s does not exist", indexPath)
		}
		return nil, ipc.IOf("opening %s: %v", indexPath, err)
	}
	defer file.Close()

	var zones []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		zones = append(zones, fields[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, ipc.IOf("reading %s: %v", indexPath, err)
	}
	return zones, nil
}

// Valid reports whether zone names an entry present in the database
// index whose zone file exists. Validation stops at existence checks;
// the zone file's contents are trusted.
func (r *Resolver) Valid(zone string) (bool, error) {
	if zone == "" || filepath.IsAbs(zone) || strings.Contains(zone, "..") {
		return false, nil
	}

	zones, err := r.List()
	if err != nil {
		return false, err
	}
	found := false
	for _, candidate := range zones {
		if candidate == zone {
			found = true
			break
		}
	}
	if !found {
		return false, nil
	}

	if _, err := os.Stat(filepath.Join(r.root, zone)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, ipc.IOf("checking zone file for %s: %v", zone, err)
	}
	return true, nil
}

// SetLink repoints the local-time link at zone's file under the
// database root. The replacement is atomic: a temporary symlink is
// created next to the link and renamed over it.
func (r *Resolver) SetLink(zone string) error {
	target := filepath.Join(r.root, zone)

	temp := fmt.Sprintf("%s.%d.tmp", r.linkPath, os.Getpid())
	os.Remove(temp)
	if err := os.Symlink(target, temp); err != nil {
		return ipc.IOf("creating timezone symlink: %v", err)
	}
	if err := os.Rename(temp, r.linkPath); err != nil {
		os.Remove(temp)
		return ipc.IOf("replacing %s: %v", r.linkPath, err)
	}
	return nil
}

// Location loads the zone's rules from the database root. "UTC"
// resolves without touching the filesystem.
func (r *Resolver) Location(zone string) (*time.Location, error) {
	if zone == "UTC" {
		return time.UTC, nil
	}
	data, err := os.ReadFile(filepath.Join(r.root, zone))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ipc.NotFoundf("zone file for %s does not exist", zone)
		}
		return nil, ipc.IOf("reading zone file for %s: %v", zone, err)
	}
	loc, err := time.LoadLocationFromTZData(zone, data)
	if err != nil {
		return nil, ipc.Internalf("parsing zone file for %s: %v", zone, err)
	}
	return loc, nil
}

// OffsetMinutesWest returns the kernel's timezone convention (minutes
// west of Greenwich) for loc at instant t.
func OffsetMinutesWest(loc *time.Location, t time.Time) int {
	_, offsetSeconds := t.In(loc).Zone()
	return -offsetSeconds / 60
}
