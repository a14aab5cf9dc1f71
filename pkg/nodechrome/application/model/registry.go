package model

import "strings"

// VersionEntry pins the Chrome package version baked into the image built from Folder.
type VersionEntry struct {
	Folder        string
	ChromeVersion string
}

// Tag is the canonical tag of the image built from the entry.
func (entry VersionEntry) Tag() string {
	return entry.Folder + "-chrome-" + ShortVersion(entry.ChromeVersion)
}

// TagEntry lists the aliases published for one canonical tag.
type TagEntry struct {
	Canonical string
	Aliases   []string
}

// AdHocBuild is built from a fixed folder, outside the versioned registry.
type AdHocBuild struct {
	Folder string
	Tag    string
}

// ShortVersion strips the distribution suffix from a Chrome package version,
// e.g. 71.0.3578.98-0ubuntu0.16.04.1 becomes 71.0.3578.98.
func ShortVersion(chromeVersion string) string {
	short, _, _ := strings.Cut(chromeVersion, "-")
	return short
}

func Versions() []VersionEntry {
	return []VersionEntry{
		{Folder: "8-stretch", ChromeVersion: "70.0.3538.110-1~deb9u1"},
		{Folder: "10-stretch", ChromeVersion: "70.0.3538.110-1~deb9u1"},
		{Folder: "10-xenial", ChromeVersion: "71.0.3578.98-0ubuntu0.16.04.1"},
	}
}

func Tags() []TagEntry {
	return []TagEntry{
		{
			Canonical: "8-stretch-chrome-70.0.3538.110",
			Aliases:   []string{"latest", "8", "8-stretch", "8-stretch-70"},
		},
		{
			Canonical: "10-stretch-chrome-70.0.3538.110",
			Aliases:   []string{"10", "10-stretch", "10-stretch-70"},
		},
		{
			Canonical: "10-xenial-chrome-71.0.3578.98",
			Aliases:   []string{"10-xenial", "10-xenial-71"},
		},
	}
}

// AdHocBuilds are the experimental images used to troubleshoot Chrome 75.
func AdHocBuilds() []AdHocBuild {
	return []AdHocBuild{
		{Folder: "experimental", Tag: "experimental"},
		{Folder: "v75.0.3770.90", Tag: "v75.0.3770.90"},
	}
}
