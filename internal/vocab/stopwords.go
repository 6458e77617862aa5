package vocab

// stopWordList holds tokens excluded from keyword consideration: generic English,
// job-posting filler, job-board UI chrome, location names, and temporal words.
// Duplicates are tolerated here; the builder collapses the list into a set.
var stopWordList = []string{
	// Common English
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with",
	"by", "from", "is", "are", "was", "were", "be", "been", "being", "have", "has",
	"had", "do", "does", "did", "will", "would", "could", "should", "may", "might",
	"must", "shall", "can", "need", "this", "that", "these", "those", "i", "you",
	"he", "she", "it", "we", "they", "what", "which", "who", "whom", "whose",
	"where", "when", "why", "how", "all", "each", "every", "both", "few", "more",
	"most", "other", "some", "such", "no", "nor", "not", "only", "own", "same",
	"so", "than", "too", "very", "just", "also", "now", "here", "there", "then",
	"if", "as", "into", "through", "during", "before", "after", "above", "below",
	"between", "under", "again", "while", "about", "against", "your", "our",
	"their", "its", "my", "his", "her", "up", "down", "out", "off", "over", "any",

	// Generic job posting words
	"well", "work", "working", "experience", "year", "years", "ability", "strong",
	"excellent", "proven", "demonstrated", "responsible", "responsibilities",
	"including", "using", "used", "new", "first", "one", "two", "three", "based",
	"across", "within", "along", "among", "around", "looking", "seeking", "required",
	"requirements", "qualifications", "preferred", "plus", "bonus", "nice", "ideal",
	"minimum", "etc", "role", "position", "job", "company", "team", "teams",

	// Job board UI noise
	"logo", "share", "show", "options", "reposted", "posted", "hours", "ago",
	"people", "clicked", "apply", "promoted", "hirer", "hiring", "actively",
	"applicants", "applicant", "easy", "save", "saved", "report", "hide",
	"follow", "following", "followers", "connections", "connection", "connect",
	"message", "messages", "view", "views", "like", "likes", "comment", "comments",
	"reactions", "reaction", "celebrate", "love", "insightful", "curious",
	"repost", "send", "copy", "link", "embed", "linkedin", "indeed", "glassdoor",
	"naukri", "monster", "ziprecruiter", "dice", "careers", "jobs",
	"back", "edit", "parsed", "resume", "regenerate", "pending", "accepted",
	"rejected", "modifications", "restructuring", "issue", "detected",

	// Locations
	"remote", "hybrid", "onsite", "office", "location", "locations",
	"bengaluru", "bangalore", "mumbai", "delhi", "hyderabad", "chennai", "pune",
	"gurgaon", "gurugram", "noida", "kolkata", "ahmedabad", "india", "indian",
	"karnataka", "maharashtra", "telangana", "tamil", "nadu", "kerala",
	"east", "west", "north", "south", "central",
	"usa", "america", "american", "california", "texas", "york", "francisco",
	"seattle", "boston", "chicago", "austin", "denver", "atlanta", "angeles",
	"london", "uk", "england", "europe", "european", "singapore", "dubai",
	"canada", "toronto", "vancouver", "australia", "sydney", "melbourne",

	// Temporal words
	"today", "yesterday", "week", "weeks", "month", "months", "day", "days",
	"hour", "minutes", "recently", "immediate", "immediately", "asap", "urgent",

	// Posting fluff
	"description", "overview", "summary", "details", "information", "info",
	"application", "applications", "submit", "click", "button",
	"equal", "opportunity", "employer", "eoe", "diversity", "inclusive",
	"benefits", "salary", "compensation", "package", "perks", "insurance",
	"health", "dental", "vision", "retirement", "401k", "pto", "vacation",
	"candidate", "candidates", "talent", "talented", "individual", "individuals",
	"join", "joining", "grow", "growth", "career", "opportunities",

	// Number words
	"four", "five", "six", "seven", "eight", "nine", "ten",
}
