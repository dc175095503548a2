package domain

// EventKind names a topic on the in-process notification bus.
type EventKind string

// EventBookmarksChanged is broadcast after any successful bookmark add or
// remove. It carries no payload; subscribers re-read whatever bookmark state
// they care about.
const EventBookmarksChanged EventKind = "bookmarks.changed"
