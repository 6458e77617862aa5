package fetch

import (
	"net/url"
	"strings"
)

// Platform identifies the job board a posting URL belongs to. Known
// platforms get hand-tuned content and noise selectors; everything else
// falls back to the generic lists.
type Platform string

const (
	PlatformLinkedIn   Platform = "linkedin"
	PlatformIndeed     Platform = "indeed"
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformUnknown    Platform = "unknown"
)

// hostPlatforms maps a hostname fragment to its platform. Order matters
// only for readability; fragments do not overlap.
var hostPlatforms = []struct {
	fragment string
	platform Platform
}{
	{"linkedin.com", PlatformLinkedIn},
	{"indeed.com", PlatformIndeed},
	{"greenhouse.io", PlatformGreenhouse},
	{"lever.co", PlatformLever},
	{"myworkdayjobs.com", PlatformWorkday},
	{"workday.com", PlatformWorkday},
}

// DetectPlatform identifies the job board platform from a posting URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	for _, hp := range hostPlatforms {
		if strings.Contains(host, hp.fragment) {
			return hp.platform
		}
	}
	return PlatformUnknown
}

// PlatformContentSelectors returns the selectors most likely to hold the
// posting body on the given platform, in priority order.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformLinkedIn:
		return []string{
			".show-more-less-html__markup", // public job page body
			".description__text",
			".jobs-description__content",
			".jobs-box__html-content",
			"#job-details",
		}
	case PlatformIndeed:
		return []string{
			"#jobDescriptionText",
			".jobsearch-jobDescriptionText",
			".jobsearch-JobComponent-description",
			"#job-content",
		}
	case PlatformGreenhouse:
		return []string{
			".job__description.body",
			".job__description",
			".job-description__content",
			"#content",
			".job-post-container",
		}
	case PlatformLever:
		return []string{
			".posting-page",
			".section-wrapper.page-full-width",
			".posting-description",
			".content",
		}
	case PlatformWorkday:
		return []string{
			"[data-automation-id='jobDescription']",
			".WDXK",
			".gwt-HTML",
			".job-description",
		}
	default:
		return JobPostingSelectors()
	}
}

// commonNoiseSelectors match elements that pollute keyword extraction on
// every board: application forms, EEO boilerplate, share widgets, cookie
// banners. Site chrome (nav, footer) is stripped separately.
var commonNoiseSelectors = []string{
	"form",
	"#application-form",
	".application-form",
	".application--container",
	".apply-button-container",
	"[data-testid='application-form']",

	".voluntary-disclosure",
	".eeo-statement",
	".eeo-section",
	"[data-testid='eeo']",
	".legal-disclosure",
	".self-identification",

	".social-share",
	".share-buttons",
	".social-links",

	".cookie-banner",
	".cookie-consent",
	".gdpr-notice",
}

// PlatformNoiseSelectors returns the common noise selectors plus any
// platform-specific ones.
func PlatformNoiseSelectors(platform Platform) []string {
	common := commonNoiseSelectors

	switch platform {
	case PlatformLinkedIn:
		return append(common,
			".jobs-apply-button",
			".job-alert-redirect-section",
			".similar-jobs",
			".people-also-viewed",
			".top-card-layout__cta-container",
			".num-applicants__caption",
		)
	case PlatformIndeed:
		return append(common,
			".jobsearch-IndeedApplyButton",
			".jobsearch-OtherJobMatchesWidget",
			".icl-Callout",
			"#mosaic-belowFullJobDescription",
		)
	case PlatformGreenhouse:
		return append(common,
			".application--wrapper",
			".voluntary-self-id",
			".voluntary-self-id-wrapper",
			"#usa_self_id_section",
			".post-apply",
		)
	case PlatformLever:
		return append(common,
			".apply-section",
			".lever-application-form",
			".posting-apply",
		)
	case PlatformWorkday:
		return append(common,
			"[data-automation-id='applyButton']",
			".application-section",
			".WDAF",
		)
	default:
		return common
	}
}
