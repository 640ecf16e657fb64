// Package adoc provides a concurrent crawler for Apple developer
// documentation. It fetches pages from developer.apple.com, optionally
// follows in-domain links one hop, and extracts a normalized record
// (title, main content, outbound links) from each page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, crawl/).
package adoc
