package catalog

// Result is one published course result.
type Result struct {
	Course  string
	Grade   string
	Remarks string
}

// Results returns the published end-of-semester results in display order.
func Results() []Result {
	return []Result{
		{Course: "Mathematics I", Grade: "A", Remarks: "Excellent"},
		{Course: "Computer Architecture", Grade: "B+", Remarks: "Very Good"},
		{Course: "Object-Oriented Programming", Grade: "A-", Remarks: "Great work"},
		{Course: "Database Systems", Grade: "B", Remarks: "Good"},
		{Course: "Web Development", Grade: "A", Remarks: "Outstanding"},
		{Course: "Operating Systems", Grade: "B-", Remarks: "Fair"},
		{Course: "Discrete Mathematics", Grade: "B+", Remarks: "Very Good"},
		{Course: "Ethics and Professionalism", Grade: "A", Remarks: "Excellent"},
	}
}
