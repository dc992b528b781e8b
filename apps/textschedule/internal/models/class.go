package models

// ClassEntry is one matched token, e.g. "MFS-A(6)- AB" held in room "C - 402".
type ClassEntry struct {
	Label string
	Venue string
}
