package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Platform is the source-control host the document is generated from.
type Platform interface {
	User(ctx context.Context, login string) (Profile, error)
	Repositories(ctx context.Context, login string) ([]Repo, error)
	PinnedRepositories(ctx context.Context, login string) ([]Repo, error)
}

// Category is a titled group of repositories in display order.
type Category struct {
	Title string
	Repos []Repo
}

// Generate fetches everything for login and renders the document.
// An incomplete repository listing or an unavailable pinned set
// degrades with a logged warning; only the profile fetch is fatal.
func Generate(ctx context.Context, platform Platform, login string, now time.Time) (string, error) {
	profile, err := platform.User(ctx, login)
	if err != nil {
		return "", fmt.Errorf("fetch user: %w", err)
	}

	repos, err := platform.Repositories(ctx, login)
	if err != nil {
		log.Printf("Warning: repository listing incomplete: %v", err)
	}

	pinned, err := platform.PinnedRepositories(ctx, login)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	if len(pinned) == 0 {
		log.Print("Note: pinned repos unavailable. Ensure `gh auth login` works or set GITHUB_TOKEN.")
	}

	log.Printf("Fetched %d repos, %d pinned for %s", len(repos), len(pinned), login)

	var out strings.Builder
	writeReadme(&out, login, profile, repos, pinned, now)
	return out.String(), nil
}

// writeReadme filters, classifies and renders the whole document.
func writeReadme(out io.StringWriter, login string, profile Profile, repos, pinned []Repo, now time.Time) {
	// Exclude the profile repo itself.
	var filtered []Repo
	for _, r := range repos {
		if goodRepo(r) && !strings.EqualFold(strings.TrimSpace(r.Name), login) {
			filtered = append(filtered, r)
		}
	}

	categories := buildCategories(filtered, pinned)

	lines := []string{
		fmt.Sprintf("<!-- Auto-generated on %s. Edit or regenerate via `go run .` -->", now.UTC().Format("2006-01-02")),
		"",
		fmt.Sprintf("![Hero](%s)", heroImagePath),
		"",
	}

	var bits []string
	if location := strings.TrimSpace(profile.Location); location != "" {
		bits = append(bits, "**"+location+"**")
	}
	for _, item := range taglineItems {
		bits = append(bits, "**"+item+"**")
	}
	lines = append(lines, strings.Join(bits, " · "), "")

	if bio != "" {
		lines = append(lines, bio, "")
	}
	lines = append(lines, "---")

	for _, category := range categories {
		items := category.Repos
		if maxPerCategory > 0 && len(items) > maxPerCategory {
			items = items[:maxPerCategory]
		}
		projects := make([]string, 0, len(items))
		for _, r := range items {
			projects = append(projects, projectLine(r))
		}
		lines = append(lines, section(category.Title, projects)...)
	}

	lines = append(lines, "", "---")

	links := make([]string, 0, len(profileLinks))
	for _, l := range profileLinks {
		links = append(links, fmt.Sprintf("- [%s](%s)", l.Label, l.URL))
	}
	lines = append(lines, section("Links", links)...)

	out.WriteString(strings.TrimRight(strings.Join(lines, "\n"), " \t\n") + "\n")
}

func goodRepo(r Repo) bool {
	return !r.Fork && !r.Archived
}

// buildCategories assigns repos to categories. Pinned repos are merged
// in when the REST listing missed them but don't change category
// assignment. Repos without a curated assignment land in the
// "Other tools" bucket sorted by stars then recency; empty categories
// are dropped.
func buildCategories(repos, pinned []Repo) []Category {
	byName := map[string]Repo{}
	var order []string
	add := func(r Repo) {
		name := strings.TrimSpace(r.Name)
		if name == "" || !goodRepo(r) {
			return
		}
		if _, ok := byName[name]; !ok {
			byName[name] = r
			order = append(order, name)
		}
	}
	for _, r := range repos {
		add(r)
	}
	for _, r := range pinned {
		add(r)
	}

	grouped := map[string][]Repo{}
	used := map[string]bool{}
	for _, assign := range repoCategories {
		r, ok := byName[assign.Repo]
		if !ok || used[assign.Repo] {
			continue
		}
		title := assign.Category
		if !slices.Contains(categoryOrder, title) {
			title = otherCategory
		}
		grouped[title] = append(grouped[title], r)
		used[assign.Repo] = true
	}

	var remaining []Repo
	for _, name := range order {
		if !used[name] {
			remaining = append(remaining, byName[name])
		}
	}
	slices.SortStableFunc(remaining, func(a, b Repo) int {
		return cmp.Or(
			-cmp.Compare(a.Stars, b.Stars),
			-a.PushedAt.Compare(b.PushedAt),
		)
	})
	grouped[otherCategory] = append(grouped[otherCategory], remaining...)

	titles := append(slices.Clone(categoryOrder), otherCategory)
	categories := make([]Category, 0, len(titles))
	for _, title := range titles {
		if len(grouped[title]) > 0 {
			categories = append(categories, Category{Title: title, Repos: grouped[title]})
		}
	}
	return categories
}

// projectLine renders one repo as a markdown list item:
// - **[name](url)** — blurb
func projectLine(r Repo) string {
	name := strings.TrimSpace(r.Name)
	url := strings.TrimSpace(r.URL)

	blurb := curatedBlurbs[name]
	if blurb == "" {
		blurb = strings.TrimSpace(r.Description)
	}

	reserve := utf8.RuneCountInString(name) + 10
	blurb = cleanDescription(blurb, max(60, targetLineChars-reserve))

	if blurb == "" {
		return fmt.Sprintf("- **[%s](%s)**", name, url)
	}
	return fmt.Sprintf("- **[%s](%s)** — %s", name, url, blurb)
}

func section(title string, items []string) []string {
	if len(items) == 0 {
		return nil
	}
	return append([]string{"", "## " + title, ""}, items...)
}

// cleanDescription collapses whitespace, strips boilerplate prefixes
// and truncates to maxLen runes with a trailing ellipsis.
func cleanDescription(desc string, maxLen int) string {
	d := strings.Join(strings.Fields(desc), " ")
	d = stripBoilerplate(d)
	runes := []rune(d)
	if len(runes) <= maxLen {
		return d
	}
	return strings.TrimRight(string(runes[:maxLen-1]), " ") + "…"
}

// stripBoilerplate removes generic "A python script which ..."
// prefixes and re-capitalizes what's left. Matching folds case in
// place rather than slicing a lowered copy, whose byte offsets can
// drift on non-ASCII descriptions.
func stripBoilerplate(desc string) string {
	for _, prefix := range boilerplatePrefixes {
		if len(desc) < len(prefix) || !strings.EqualFold(desc[:len(prefix)], prefix) {
			continue
		}
		rest := desc[len(prefix):]
		if rest == "" {
			return desc
		}
		r, size := utf8.DecodeRuneInString(rest)
		return string(unicode.ToUpper(r)) + rest[size:]
	}
	return desc
}
