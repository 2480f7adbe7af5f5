package url

import "strings"

type knownSite struct {
	domain string
	name   string
	icon   string
}

// knownSites maps well-known domains to display metadata.
// Order matters: the first domain contained in the host wins.
var knownSites = []knownSite{
	{"deepseek.com", "DeepSeek", "🧠"},
	{"kimi.moonshot.cn", "Kimi", "🌙"},
	{"claude.ai", "Claude", "🤖"},
	{"chat.openai.com", "ChatGPT", "💬"},
	{"github.com", "GitHub", "💻"},
	{"docs.google.com", "Google Docs", "📄"},
	{"google.com", "Google", "🔍"},
	{"wikipedia.org", "Wikipedia", "🌍"},
	{"bilibili.com", "Bilibili", "📺"},
	{"zhihu.com", "知乎", "❓"},
	{"baidu.com", "百度", "🔍"},
	{"youtube.com", "YouTube", "📺"},
	{"twitter.com", "Twitter", "🐦"},
	{"facebook.com", "Facebook", "📘"},
	{"linkedin.com", "LinkedIn", "💼"},
	{"reddit.com", "Reddit", "🤖"},
	{"stackoverflow.com", "Stack Overflow", "💻"},
	{"medium.com", "Medium", "📝"},
	{"notion.so", "Notion", "📋"},
	{"figma.com", "Figma", "🎨"},
	{"dribbble.com", "Dribbble", "🏀"},
	{"behance.net", "Behance", "🎨"},
}

const (
	defaultSiteIcon  = "🌐"
	unknownSiteLabel = "Unknown site"
)

// SiteLabel returns a display name for a URL: the known site name, or the
// domain without "www." otherwise.
func SiteLabel(rawURL string) string {
	if IsInternal(strings.TrimSpace(rawURL)) {
		return strings.TrimSpace(rawURL)
	}
	domain := domainOf(rawURL)
	if domain == "" {
		return unknownSiteLabel
	}
	if site, ok := lookupSite(domain); ok {
		return site.name
	}
	return domain
}

// SiteIcon returns an emoji icon for a URL.
func SiteIcon(rawURL string) string {
	if site, ok := lookupSite(domainOf(rawURL)); ok {
		return site.icon
	}
	return defaultSiteIcon
}

func domainOf(rawURL string) string {
	normalized, err := NormalizeAndValidate(rawURL)
	if err != nil {
		return ""
	}
	return ExtractDomain(normalized)
}

func lookupSite(domain string) (knownSite, bool) {
	if domain == "" {
		return knownSite{}, false
	}
	for _, site := range knownSites {
		if strings.Contains(domain, site.domain) {
			return site, true
		}
	}
	return knownSite{}, false
}
