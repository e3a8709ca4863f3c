// Package scene generates a layered procedural illustration of a city
// skyline being reclaimed by nature: a warm gradient sky, a soft-focus
// skyline, rolling hills, climbing vines, ferns, glass panels and
// decorative framing, all rendered deterministically from a seed.
package scene
