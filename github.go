package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"time"
	"unicode/utf8"

	"github.com/google/go-github/v48/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// maxRepoPages bounds the owner-repo listing. Two pages of 100 cover
// every account this generator is pointed at.
const maxRepoPages = 2

// Profile holds the user fields the document needs.
type Profile struct {
	Login    string
	Name     string
	Location string
}

// Repo is normalized repository metadata, whether it came from the
// REST listing or the pinned-items GraphQL query.
type Repo struct {
	Name        string
	URL         string
	Description string
	Stars       int
	Forks       int
	Language    string
	PushedAt    time.Time
	Archived    bool
	Fork        bool
}

type Querier interface {
	Query(ctx context.Context, q any, variables map[string]any) error
}

// GitHub fetches profile data over the REST API and pinned repos over
// GraphQL. gql is nil when running unauthenticated; pinned lookups
// then go straight to the gh CLI fallback.
type GitHub struct {
	rest *github.Client
	gql  Querier
}

func NewGitHub(token string) *GitHub {
	if token == "" {
		return &GitHub{rest: github.NewClient(nil)}
	}
	src := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	httpClient := oauth2.NewClient(context.Background(), src)
	return &GitHub{
		rest: github.NewClient(httpClient),
		gql:  githubv4.NewClient(httpClient),
	}
}

func (gh *GitHub) User(ctx context.Context, login string) (Profile, error) {
	user, _, err := gh.rest.Users.Get(ctx, login)
	if err != nil {
		return Profile{}, fmt.Errorf("get user %s: %w", login, err)
	}
	return Profile{
		Login:    user.GetLogin(),
		Name:     user.GetName(),
		Location: user.GetLocation(),
	}, nil
}

// Repositories lists repos owned by login, most recently pushed first.
// A page failure returns the repos fetched so far along with the
// error, so the caller can degrade instead of aborting.
func (gh *GitHub) Repositories(ctx context.Context, login string) ([]Repo, error) {
	var repos []Repo
	opts := &github.RepositoryListOptions{
		Type:        "owner",
		Sort:        "pushed",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for page := 1; page <= maxRepoPages; page++ {
		opts.Page = page
		batch, _, err := gh.rest.Repositories.List(ctx, login, opts)
		if err != nil {
			return repos, fmt.Errorf("list repos page %d: %w", page, err)
		}
		for _, r := range batch {
			repos = append(repos, Repo{
				Name:        r.GetName(),
				URL:         r.GetHTMLURL(),
				Description: r.GetDescription(),
				Stars:       r.GetStargazersCount(),
				Forks:       r.GetForksCount(),
				Language:    r.GetLanguage(),
				PushedAt:    r.GetPushedAt().Time,
				Archived:    r.GetArchived(),
				Fork:        r.GetFork(),
			})
		}
		if len(batch) < opts.PerPage {
			break
		}
	}
	return repos, nil
}

// PinnedRepositories resolves pinned repos via authenticated GraphQL
// when a token is present, falling back to `gh api graphql` with the
// user's existing gh auth. Both tiers failing is not fatal to the
// document; the caller proceeds without a pinned set.
func (gh *GitHub) PinnedRepositories(ctx context.Context, login string) ([]Repo, error) {
	if gh.gql != nil {
		pinned, err := gh.pinnedGraphQL(ctx, login)
		if err == nil {
			return pinned, nil
		}
		log.Printf("Warning: GraphQL pinned query failed: %v", err)
	}
	pinned, err := pinnedFromGH(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("pinned repos via gh: %w", err)
	}
	return pinned, nil
}

func (gh *GitHub) pinnedGraphQL(ctx context.Context, login string) ([]Repo, error) {
	var queryPinned struct {
		User struct {
			PinnedItems struct {
				Nodes []struct {
					Repository struct {
						Name            githubv4.String
						URL             githubv4.URI
						Description     githubv4.String
						StargazerCount  githubv4.Int
						ForkCount       githubv4.Int
						UpdatedAt       githubv4.DateTime
						PrimaryLanguage struct {
							Name githubv4.String
						}
					} `graphql:"... on Repository"`
				}
			} `graphql:"pinnedItems(first: 6, types: REPOSITORY)"`
		} `graphql:"user(login: $login)"`
	}

	variables := map[string]any{
		"login": githubv4.String(login),
	}
	if err := gh.gql.Query(ctx, &queryPinned, variables); err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	nodes := queryPinned.User.PinnedItems.Nodes
	pinned := make([]Repo, 0, len(nodes))
	for _, node := range nodes {
		r := node.Repository
		var u string
		if r.URL.URL != nil {
			u = r.URL.String()
		}
		pinned = append(pinned, Repo{
			Name:        string(r.Name),
			URL:         u,
			Description: string(r.Description),
			Stars:       int(r.StargazerCount),
			Forks:       int(r.ForkCount),
			Language:    string(r.PrimaryLanguage.Name),
			PushedAt:    r.UpdatedAt.Time,
		})
	}
	return pinned, nil
}

// pinnedFromGH runs the pinned-items query through `gh api graphql`,
// reusing whatever auth the gh CLI already has.
func pinnedFromGH(ctx context.Context, login string) ([]Repo, error) {
	query := fmt.Sprintf(`{ user(login:%q) {`+
		` pinnedItems(first:6, types:REPOSITORY) {`+
		` nodes { ... on Repository {`+
		` name url description stargazerCount forkCount`+
		` updatedAt primaryLanguage { name }`+
		` } } } } }`, login)

	cmd := exec.CommandContext(ctx, "gh", "api", "graphql", "-f", "query="+query)
	out, err := cmd.Output()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, errors.New("gh CLI not found")
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("gh api graphql: %s", firstN(string(exitErr.Stderr), 200))
		}
		return nil, err
	}
	return parseGHPinned(out)
}

func parseGHPinned(out []byte) ([]Repo, error) {
	var resp struct {
		Data struct {
			User struct {
				PinnedItems struct {
					Nodes []struct {
						Name            string    `json:"name"`
						URL             string    `json:"url"`
						Description     string    `json:"description"`
						StargazerCount  int       `json:"stargazerCount"`
						ForkCount       int       `json:"forkCount"`
						UpdatedAt       time.Time `json:"updatedAt"`
						PrimaryLanguage struct {
							Name string `json:"name"`
						} `json:"primaryLanguage"`
					} `json:"nodes"`
				} `json:"pinnedItems"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(out, &resp); err != nil {
		return nil, fmt.Errorf("parse gh output %q: %w", firstN(string(out), 200), err)
	}

	nodes := resp.Data.User.PinnedItems.Nodes
	pinned := make([]Repo, 0, len(nodes))
	for _, n := range nodes {
		pinned = append(pinned, Repo{
			Name:        n.Name,
			URL:         n.URL,
			Description: n.Description,
			Stars:       n.StargazerCount,
			Forks:       n.ForkCount,
			Language:    n.PrimaryLanguage.Name,
			PushedAt:    n.UpdatedAt,
		})
	}
	return pinned, nil
}

// firstN shortens diagnostics to at most n bytes, backing up to a
// rune boundary so a multibyte character is never cut in half.
func firstN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
