// Package catalog holds the read-only display data of the portal: the daily
// lecture timetable and the published course results. The data is fixed for
// every student; the portal currently has no per-student variance here.
package catalog

// Slot is one timetable row.
type Slot struct {
	Time    string
	Subject string
	Venue   string
}

// Timetable returns the daily lecture slots in display order.
func Timetable() []Slot {
	return []Slot{
		{Time: "08:00 - 09:30", Subject: "Mathematics I", Venue: "Room A1"},
		{Time: "09:30 - 11:00", Subject: "Computer Architecture", Venue: "Room B2"},
		{Time: "11:00 - 12:30", Subject: "Object-Oriented Programming", Venue: "Lab C1"},
		{Time: "12:30 - 01:30", Subject: "Lunch Break", Venue: "-"},
		{Time: "01:30 - 03:00", Subject: "Database Systems", Venue: "Room D3"},
		{Time: "03:00 - 04:30", Subject: "Web Development", Venue: "Lab C2"},
		{Time: "04:30 - 06:00", Subject: "Operating Systems", Venue: "Room A2"},
		{Time: "06:00 - 07:30", Subject: "Discrete Mathematics", Venue: "Room B1"},
	}
}
