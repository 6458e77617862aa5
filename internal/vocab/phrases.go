package vocab

// phraseList holds multi-word technical and domain phrases detected by substring
// containment against the lowercased cleaned text. Phrase detection runs before
// single-word tokenization so terms whose component words are short or common
// ("end to end", "power bi") are still captured.
var phraseList = []string{
	"machine learning", "deep learning", "artificial intelligence", "data science",
	"data engineering", "data analysis", "data analytics", "product management",
	"project management", "program management", "user experience", "user interface",
	"user research", "full stack", "front end", "back end", "cloud computing",
	"distributed systems", "microservices", "agile methodology", "scrum master",
	"product owner", "continuous integration", "continuous deployment",
	"test driven development", "object oriented", "functional programming",
	"cross functional", "stakeholder management", "a/b testing", "ab testing",
	"natural language processing", "computer vision", "sprint planning",
	"product roadmap", "go to market", "business intelligence", "business analysis",
	"customer success", "customer experience", "supply chain", "financial analysis",
	"react native", "node.js", "next.js", "vue.js", "amazon web services",
	"google cloud", "microsoft azure", "sql server", "power bi", "google analytics",
	"version control", "code review", "pull request", "unit testing",
	"integration testing", "end to end", "rest api", "graphql api", "api development",
	"software development", "web development", "mobile development", "app development",
	"product development life cycle", "pdlc", "sdlc", "software development life cycle",
	"backlog management", "release planning", "sprint review", "retrospective",
	"design collaboration", "ux design", "ui ux", "user stories", "acceptance criteria",
	"customer interviews", "market research", "competitive analysis",
	"product requirements", "requirements documentation", "technical specifications",
	"hypothesis driven", "customer driven", "sales enablement", "release cadence",
}
