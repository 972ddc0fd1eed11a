// Package gitbooktext provides a CLI tool for downloading GitBook
// documentation sites as plain text. It discovers every content page of a
// site by same-domain traversal, fetches each page's raw markdown source,
// and converts it into sanitized plain text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, goldmark/).
package gitbooktext
