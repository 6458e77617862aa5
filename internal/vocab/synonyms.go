package vocab

// synonymGroups maps a canonical term to the variant spellings that normalize to it.
// Variants are matched after lowercasing, so every entry here must be lowercase.
var synonymGroups = map[string][]string{
	// Programming languages
	"javascript": {"js", "es6", "es2015", "ecmascript", "node.js", "nodejs", "node"},
	"typescript": {"ts"},
	"python":     {"py", "python3", "python2"},
	"golang":     {"go", "go lang"},
	"csharp":     {"c#", "c-sharp", "dotnet", ".net", "dot net"},
	"cplusplus":  {"c++", "cpp"},

	// Frameworks and libraries
	"react":   {"reactjs", "react.js", "react native", "reactnative"},
	"angular": {"angularjs", "angular.js", "angular2", "angular4"},
	"vue":     {"vuejs", "vue.js", "vue3"},
	"nextjs":  {"next.js", "next"},
	"express": {"expressjs", "express.js"},
	"django":  {"python django"},
	"flask":   {"python flask"},
	"spring":  {"spring boot", "springboot"},

	// Cloud and DevOps
	"aws":        {"amazon web services", "amazon cloud", "ec2", "s3", "lambda", "amazon"},
	"gcp":        {"google cloud", "google cloud platform", "gce"},
	"azure":      {"microsoft azure", "ms azure"},
	"kubernetes": {"k8s", "kube"},
	"docker":     {"containerization", "containers", "dockerfile"},
	"cicd":       {"ci/cd", "ci-cd", "continuous integration", "continuous deployment", "jenkins", "gitlab ci", "github actions"},
	"terraform":  {"infrastructure as code", "iac"},

	// Databases
	"postgresql":    {"postgres", "psql", "postgre"},
	"mongodb":       {"mongo", "nosql"},
	"mysql":         {"my sql", "mariadb"},
	"elasticsearch": {"elastic", "elk", "elastic search"},
	"dynamodb":      {"dynamo", "dynamo db"},
	"redis":         {"caching", "in-memory"},

	// Data and ML
	"machinelearning": {"machine learning", "ml", "deep learning", "dl", "ai", "artificial intelligence"},
	// "analytics" belongs to the analytical group; a variant may map to only one canonical term.
	"datascience":     {"data science", "data scientist", "data analytics"},
	"dataengineering": {"data engineering", "data engineer", "etl", "data pipeline", "data pipelines"},
	"nlp":             {"natural language processing", "natural language", "text processing"},
	"computervision":  {"computer vision", "image processing", "cv"},

	// Methodologies
	"agile":             {"scrum", "kanban", "sprint", "sprints", "agile methodology"},
	"devops":            {"dev ops", "sre", "site reliability", "platform engineering"},
	"productmanagement": {"product management", "product manager", "pm", "product owner", "po"},
	"projectmanagement": {"project management", "project manager", "pmp"},

	// Soft skills, including action verbs that imply the skill
	"leadership":     {"led", "leading", "leader", "manage", "managed", "managing", "oversaw", "supervised", "directed", "head", "headed", "spearheaded"},
	"communication":  {"communicate", "communicated", "communicating", "verbal", "written", "presentation", "presenting", "presented"},
	"collaboration":  {"collaborate", "collaborated", "collaborating", "team player", "teamwork", "cross-functional", "cross functional", "partnered", "partnering"},
	"problemsolving": {"problem solving", "problem-solving", "troubleshoot", "troubleshooting", "debug", "debugging", "resolved", "resolving", "solving"},
	"analytical":     {"analysis", "analyze", "analyzed", "analyzing", "analytics", "analytical skills", "data-driven", "data driven"},
	"strategic":      {"strategy", "strategic thinking", "strategize", "strategic planning"},

	// Role terms
	"fullstack": {"full stack", "full-stack", "frontend and backend", "front and back end"},
	"frontend":  {"front end", "front-end", "ui", "user interface", "client side", "client-side"},
	"backend":   {"back end", "back-end", "server side", "server-side", "api development"},
	"senior":    {"sr", "sr.", "lead", "principal", "staff"},
	"junior":    {"jr", "jr.", "entry level", "entry-level", "associate"},

	// Tools
	"jira":    {"atlassian", "confluence", "trello"},
	"figma":   {"sketch", "adobe xd", "invision", "ui design"},
	"git":     {"github", "gitlab", "bitbucket", "version control", "source control"},
	"tableau": {"power bi", "looker", "data visualization", "dashboards"},
	"excel":   {"spreadsheets", "google sheets", "sheets"},

	// API and testing
	"api":     {"apis", "rest", "restful", "rest api", "graphql", "endpoint", "endpoints", "web services", "microservices"},
	"testing": {"test", "tests", "qa", "quality assurance", "unit testing", "integration testing", "e2e", "end to end", "automated testing", "test automation"},

	// Product management
	"prd":                 {"product requirements", "product requirements document", "requirements document"},
	"roadmap":             {"product roadmap", "roadmapping", "product planning"},
	"backlog":             {"product backlog", "backlog management", "backlog grooming", "backlog refinement"},
	"userstories":         {"user stories", "user story", "stories"},
	"stakeholder":         {"stakeholders", "stakeholder management", "stakeholder collaboration"},
	"ux":                  {"user experience", "usability", "user research"},
	"designcollaboration": {"design collaboration", "work with design", "collaborate with design", "design team"},
}
