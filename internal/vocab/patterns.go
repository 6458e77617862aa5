package vocab

// SkillCategory is the classification bucket assigned to a keyword.
type SkillCategory string

const (
	// SkillHard marks concrete technical or tool competencies.
	SkillHard SkillCategory = "hard"
	// SkillSoft marks interpersonal and behavioral competencies.
	SkillSoft SkillCategory = "soft"
	// SkillGeneral is the default bucket for everything else.
	SkillGeneral SkillCategory = "general"
)

// skillPatternSpec is the declarative form of a skill pattern before compilation.
// Patterns are evaluated in the order listed; the first match wins.
type skillPatternSpec struct {
	category SkillCategory
	pattern  string
}

var skillPatternSpecs = []skillPatternSpec{
	// Hard skills
	{SkillHard, `python|java|javascript|typescript|golang|ruby|php|swift|kotlin|scala|rust|cplusplus|csharp`},
	{SkillHard, `react|angular|vue|django|flask|spring|express|nextjs|rails|laravel`},
	{SkillHard, `sql|postgres|mysql|mongodb|redis|elasticsearch|dynamodb|cassandra|oracle`},
	{SkillHard, `aws|azure|gcp|cloud|kubernetes|docker|terraform|ansible|jenkins|cicd`},
	{SkillHard, `git|jira|confluence|figma|sketch|tableau|powerbi|excel`},
	{SkillHard, `pandas|numpy|spark|hadoop|kafka|airflow|dbt|snowflake|databricks`},
	{SkillHard, `tensorflow|pytorch|keras|scikit|machinelearning|datascience|nlp|computervision`},
	{SkillHard, `api|rest|graphql|microservices|devops|agile|scrum|kanban`},
	{SkillHard, `html|css|sass|webpack|npm|yarn|testing|selenium|cypress`},
	{SkillHard, `linux|unix|bash|powershell|networking|security|encryption`},
	{SkillHard, `fullstack|frontend|backend|dataengineering|productmanagement`},
	{SkillHard, `prd|roadmap|backlog|sprint|release|pdlc|sdlc|userstories`},

	// Soft skills
	{SkillSoft, `leadership|communication|collaboration|teamwork|problemsolving`},
	{SkillSoft, `analytical|creative|strategic|innovative|adaptable|flexible`},
	{SkillSoft, `organized|detail|motivated|proactive|reliable|dependable`},
	{SkillSoft, `interpersonal|negotiation|presentation|mentoring|coaching`},
	{SkillSoft, `decision|time|prioritization|critical|thinking`},
	{SkillSoft, `customer|results|goal|stakeholder|influence|persuasion|empathy`},
}
