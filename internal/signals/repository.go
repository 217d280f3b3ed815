// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package signals

import (
	"regexp"
	"strings"
)

// repositoryKeywordWindow is how close a generic URL must sit to rider
// vocabulary to count as a repository link.
const repositoryKeywordWindow = 80

var (
	urlRe = regexp.MustCompile(`(?:https?://|www\.)[^\s<>"')\]]+`)

	// repositoryHostRe matches file-sharing and rider-portal hosts.
	repositoryHostRe = regexp.MustCompile(`(?:^|[/.])(?:drive\.google\.com|docs\.google\.com|dropbox\.com|wetransfer\.com|we\.tl|onedrive\.live\.com|1drv\.ms|sharepoint\.com|box\.com|mega\.nz|mega\.io|icloud\.com|stageplot\.com|techrider\.[a-z]+|riders?\.[a-z]+)\b`)

	repositoryKeywordRe = regexp.MustCompile(`\briders?\b|\bdownload\b|\bdescarrega\w*|\bdescarga\w*|\blatest\b|\bdarrera\b|\b[uú]ltima\b|\bupdated?\b|\bactualitza\w*|\bactualiza\w*|\bversion\b|\bversi[oó]n?\b|\bstage\s*plot\b|\bpatch\b|\bfitxa\b|\bficha\b`)
)

// RepositorySignal records whether the document links to a canonical online
// copy of itself.
type RepositorySignal struct {
	Link bool
	// URL is the first qualifying link.
	URL string
}

// Partial grades the repository evidence.
func (r RepositorySignal) Partial() int {
	if r.Link {
		return 100
	}
	return 0
}

// DetectRepository accepts links to known sharing hosts or to host, and
// generic links that appear next to rider vocabulary.
func DetectRepository(in Input) RepositorySignal {
	t := in.Normalized
	host := strings.ToLower(strings.TrimSpace(in.Host))
	for _, loc := range urlRe.FindAllStringIndex(t, -1) {
		u := t[loc[0]:loc[1]]
		if repositoryHostRe.MatchString(u) || (host != "" && strings.Contains(u, host)) {
			return RepositorySignal{Link: true, URL: u}
		}
		lo := max(0, loc[0]-repositoryKeywordWindow)
		hi := min(len(t), loc[1]+repositoryKeywordWindow)
		if repositoryKeywordRe.MatchString(t[lo:loc[0]]) || repositoryKeywordRe.MatchString(t[loc[1]:hi]) {
			return RepositorySignal{Link: true, URL: u}
		}
	}
	return RepositorySignal{}
}
